package ai

import "codeweaver_server/internal/types"

// The fallback library: deterministic, hand-authored artifact triples keyed
// by application type. This is the correctness backstop of the whole
// pipeline, so nothing in here may touch the network or vary between calls.

// FallbackFor returns the fallback artifact set for an application type.
// Unknown types get the generic template.
func FallbackFor(applicationType string) types.GeneratedArtifactSet {
	if applicationType == "video_platform" {
		return types.GeneratedArtifactSet{
			HTML: videoPlatformFallbackHTML,
			CSS:  videoPlatformFallbackCSS,
			JS:   videoPlatformFallbackJS,
		}
	}
	return types.GeneratedArtifactSet{
		HTML: genericFallbackHTML,
		CSS:  genericFallbackCSS,
		JS:   genericFallbackJS,
	}
}

const videoPlatformFallbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>StreamHub - Watch Anything</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <header class="topbar">
        <button class="menu-btn" id="menuBtn" aria-label="Menu">&#9776;</button>
        <a class="logo" href="#">Stream<span>Hub</span></a>
        <div class="search">
            <input type="text" id="searchInput" placeholder="Search videos...">
            <button id="searchBtn" aria-label="Search">&#128269;</button>
        </div>
        <div class="avatar">SH</div>
    </header>
    <div class="layout">
        <nav class="sidebar" id="sidebar">
            <a href="#" class="active">Home</a>
            <a href="#">Trending</a>
            <a href="#">Subscriptions</a>
            <a href="#">Library</a>
            <a href="#">History</a>
        </nav>
        <main>
            <div class="chips" id="chips"></div>
            <section class="video-grid" id="videoGrid"></section>
        </main>
    </div>
    <script src="app.js"></script>
</body>
</html>
`

const videoPlatformFallbackCSS = `:root {
  --bg: #0f0f0f;
  --surface: #1f1f1f;
  --text: #f1f1f1;
  --muted: #aaaaaa;
  --accent: #ff0033;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { background: var(--bg); color: var(--text); font-family: "Roboto", Arial, sans-serif; }
.topbar { display: flex; align-items: center; gap: 16px; padding: 8px 16px; background: var(--bg); position: sticky; top: 0; z-index: 10; }
.menu-btn { background: none; border: none; color: var(--text); font-size: 20px; cursor: pointer; }
.logo { color: var(--text); text-decoration: none; font-size: 20px; font-weight: 700; }
.logo span { color: var(--accent); }
.search { flex: 1; display: flex; max-width: 560px; margin: 0 auto; }
.search input { flex: 1; background: #121212; border: 1px solid #303030; color: var(--text); padding: 8px 16px; border-radius: 20px 0 0 20px; outline: none; }
.search button { background: #222; border: 1px solid #303030; border-left: none; color: var(--text); padding: 0 20px; border-radius: 0 20px 20px 0; cursor: pointer; }
.avatar { width: 32px; height: 32px; border-radius: 50%; background: var(--accent); display: flex; align-items: center; justify-content: center; font-size: 12px; font-weight: 700; }
.layout { display: flex; }
.sidebar { width: 200px; padding: 12px; display: flex; flex-direction: column; gap: 4px; }
.sidebar a { color: var(--text); text-decoration: none; padding: 10px 16px; border-radius: 10px; }
.sidebar a:hover, .sidebar a.active { background: var(--surface); }
.sidebar.collapsed { display: none; }
main { flex: 1; }
.chips { display: flex; gap: 8px; padding: 12px 24px 0; flex-wrap: wrap; }
.chip { background: var(--surface); color: var(--text); border: none; padding: 6px 12px; border-radius: 8px; cursor: pointer; }
.chip.selected { background: var(--text); color: var(--bg); }
.video-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 16px; padding: 24px; }
.video-card { border-radius: 12px; overflow: hidden; cursor: pointer; }
.thumb { position: relative; }
.thumb img { width: 100%; aspect-ratio: 16 / 9; object-fit: cover; display: block; border-radius: 12px; }
.duration { position: absolute; right: 8px; bottom: 8px; background: rgba(0,0,0,0.8); padding: 2px 6px; border-radius: 4px; font-size: 12px; }
.meta { padding: 12px 4px; }
.meta .title { font-weight: 500; }
.meta .channel, .meta .stats { color: var(--muted); font-size: 14px; margin-top: 4px; }
@media (max-width: 700px) { .sidebar { display: none; } }
`

const videoPlatformFallbackJS = `const videos = [
  { title: "Building a Web App from Scratch", channel: "DevAcademy", views: "1.2M views", age: "2 weeks ago", duration: "18:32", category: "Tech" },
  { title: "Lo-fi Beats to Code To", channel: "ChillStream", views: "4.8M views", age: "1 month ago", duration: "1:02:11", category: "Music" },
  { title: "Street Food Tour: Bangkok", channel: "WorldEats", views: "890K views", age: "3 days ago", duration: "24:05", category: "Travel" },
  { title: "Marathon Training: Week One", channel: "RunFar", views: "320K views", age: "5 days ago", duration: "12:47", category: "Sports" },
  { title: "The Physics of Black Holes", channel: "ScienceNow", views: "2.1M views", age: "6 months ago", duration: "31:18", category: "Science" },
  { title: "Speedrunning History in 40 Minutes", channel: "PixelPast", views: "1.6M views", age: "1 week ago", duration: "40:00", category: "Gaming" },
];

const categories = ["All", "Tech", "Music", "Travel", "Sports", "Science", "Gaming"];

const grid = document.getElementById("videoGrid");
const chips = document.getElementById("chips");
const searchInput = document.getElementById("searchInput");
let activeCategory = "All";

function render() {
  const query = searchInput.value.trim().toLowerCase();
  grid.innerHTML = "";
  videos
    .filter(v => activeCategory === "All" || v.category === activeCategory)
    .filter(v => !query || v.title.toLowerCase().includes(query) || v.channel.toLowerCase().includes(query))
    .forEach((v, i) => {
      const card = document.createElement("article");
      card.className = "video-card";
      card.innerHTML =
        '<div class="thumb"><img src="https://picsum.photos/seed/' + (i + 1) + '/640/360" alt=""><span class="duration">' + v.duration + '</span></div>' +
        '<div class="meta"><div class="title">' + v.title + '</div><div class="channel">' + v.channel + '</div><div class="stats">' + v.views + " &middot; " + v.age + "</div></div>";
      grid.appendChild(card);
    });
}

categories.forEach(c => {
  const chip = document.createElement("button");
  chip.className = "chip" + (c === activeCategory ? " selected" : "");
  chip.textContent = c;
  chip.addEventListener("click", () => {
    activeCategory = c;
    document.querySelectorAll(".chip").forEach(el => el.classList.remove("selected"));
    chip.classList.add("selected");
    render();
  });
  chips.appendChild(chip);
});

searchInput.addEventListener("input", render);
document.getElementById("searchBtn").addEventListener("click", render);
document.getElementById("menuBtn").addEventListener("click", () => {
  document.getElementById("sidebar").classList.toggle("collapsed");
});

render();
`

const genericFallbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome - Your New Website</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <header class="navbar">
        <a class="logo" href="#">YourBrand</a>
        <nav>
            <a href="#features">Features</a>
            <a href="#about">About</a>
            <a href="#contact">Contact</a>
        </nav>
        <a class="btn btn-small" href="#contact">Get Started</a>
    </header>
    <main>
        <section class="hero">
            <h1>Something Great Starts Here</h1>
            <p>A clean, responsive starting point for your new website. Swap in your own copy and ship it.</p>
            <a class="btn" href="#features">Explore Features</a>
        </section>
        <section class="cards" id="features"></section>
        <section class="about" id="about">
            <h2>About</h2>
            <p>This page was assembled from a reliable built-in template so you always receive a working, renderable project.</p>
        </section>
    </main>
    <footer id="contact">
        <p>&copy; 2025 YourBrand. All rights reserved.</p>
    </footer>
    <script src="app.js"></script>
</body>
</html>
`

const genericFallbackCSS = `:root {
  --bg: #0b1220;
  --surface: #111a2e;
  --text: #e5e7eb;
  --muted: #94a3b8;
  --accent: #3b82f6;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { background: var(--bg); color: var(--text); font-family: "Inter", system-ui, sans-serif; line-height: 1.6; }
.navbar { display: flex; align-items: center; justify-content: space-between; padding: 16px 32px; position: sticky; top: 0; background: rgba(11, 18, 32, 0.9); backdrop-filter: blur(8px); }
.navbar nav { display: flex; gap: 24px; }
.navbar a { color: var(--text); text-decoration: none; }
.logo { font-weight: 700; font-size: 20px; }
.hero { padding: 96px 24px; text-align: center; }
.hero h1 { font-size: 48px; letter-spacing: -0.02em; }
.hero p { color: var(--muted); margin: 16px auto 0; max-width: 560px; }
.btn { display: inline-block; background: var(--accent); color: #fff; padding: 12px 28px; border-radius: 8px; text-decoration: none; margin-top: 32px; }
.btn-small { padding: 8px 18px; margin-top: 0; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 24px; padding: 48px 32px; max-width: 1100px; margin: 0 auto; }
.card { background: var(--surface); border-radius: 12px; padding: 24px; }
.card h3 { margin-bottom: 8px; }
.card p { color: var(--muted); }
.about { max-width: 720px; margin: 0 auto; padding: 48px 24px; text-align: center; }
.about p { color: var(--muted); margin-top: 12px; }
footer { text-align: center; padding: 32px; color: var(--muted); }
@media (max-width: 600px) { .hero h1 { font-size: 32px; } .navbar nav { display: none; } }
`

const genericFallbackJS = `const features = [
  { title: "Responsive", body: "Looks right on phones, tablets and desktops out of the box." },
  { title: "Fast", body: "Plain HTML, CSS and JavaScript. No build step, nothing to install." },
  { title: "Accessible", body: "Semantic markup and sensible contrast from the start." },
];

const cards = document.querySelector(".cards");
features.forEach(f => {
  const card = document.createElement("div");
  card.className = "card";
  card.innerHTML = "<h3>" + f.title + "</h3><p>" + f.body + "</p>";
  cards.appendChild(card);
});
`
