package server

// DashboardHTML is the embedded single-page preview for autocam. It
// connects via WebSocket and draws the camera path over a schematic of
// the output canvas.
const DashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>autocam Preview</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, monospace;
    background: #0d1117; color: #c9d1d9; padding: 20px;
  }
  h1 { color: #58a6ff; margin-bottom: 4px; font-size: 1.5em; }
  .subtitle { color: #8b949e; margin-bottom: 20px; font-size: 0.9em; }
  .status-bar {
    display: flex; gap: 20px; margin-bottom: 20px; padding: 12px 16px;
    background: #161b22; border: 1px solid #30363d; border-radius: 6px;
  }
  .status-item { display: flex; flex-direction: column; }
  .status-label { font-size: 0.75em; color: #8b949e; text-transform: uppercase; }
  .status-value { font-size: 1.1em; font-weight: 600; }
  .status-value.connected { color: #3fb950; }
  .status-value.disconnected { color: #f85149; }
  #stage {
    background: #161b22; border: 1px solid #30363d; border-radius: 6px;
    width: 100%; max-width: 960px; display: block;
  }
  .legend { margin-top: 12px; font-size: 0.85em; color: #8b949e; }
  .legend .cam { color: #d2a8ff; }
  .legend .content { color: #3fb950; }
</style>
</head>
<body>
<h1>autocam Preview</h1>
<p class="subtitle">Virtual camera playback over the output canvas</p>

<div class="status-bar">
  <div class="status-item">
    <span class="status-label">Connection</span>
    <span class="status-value disconnected" id="conn-status">Disconnected</span>
  </div>
  <div class="status-item">
    <span class="status-label">Output time</span>
    <span class="status-value" id="time">0.000s</span>
  </div>
  <div class="status-item">
    <span class="status-label">Zoom</span>
    <span class="status-value" id="zoom">1.00x</span>
  </div>
  <div class="status-item">
    <span class="status-label">Motions</span>
    <span class="status-value" id="motions">0</span>
  </div>
</div>

<canvas id="stage" width="960" height="540"></canvas>
<p class="legend"><span class="content">&#9632;</span> content area &nbsp;
  <span class="cam">&#9632;</span> camera viewport</p>

<script>
const canvas = document.getElementById('stage');
const ctx = canvas.getContext('2d');
let output = { width: 1, height: 1 };
let content = { x: 0, y: 0, width: 1, height: 1 };

function sx(v) { return v * canvas.width / output.width; }
function sy(v) { return v * canvas.height / output.height; }

function draw(frame) {
  ctx.fillStyle = '#0d1117';
  ctx.fillRect(0, 0, canvas.width, canvas.height);

  ctx.strokeStyle = '#3fb950';
  ctx.strokeRect(sx(content.x), sy(content.y), sx(content.width), sy(content.height));

  if (frame) {
    ctx.strokeStyle = '#d2a8ff';
    ctx.lineWidth = 2;
    ctx.strokeRect(sx(frame.rect.x), sy(frame.rect.y), sx(frame.rect.width), sy(frame.rect.height));
    ctx.lineWidth = 1;
    document.getElementById('time').textContent = (frame.output_ms / 1000).toFixed(3) + 's';
    document.getElementById('zoom').textContent = frame.zoom.toFixed(2) + 'x';
  }
}

fetch('/api/schedule').then(r => r.json()).then(data => {
  output = data.output;
  content = data.content;
  document.getElementById('motions').textContent = data.motions ? data.motions.length : 0;
  draw(null);
});

function connect() {
  const ws = new WebSocket('ws://' + location.host + '/ws');
  const status = document.getElementById('conn-status');
  ws.onopen = () => { status.textContent = 'Connected'; status.className = 'status-value connected'; };
  ws.onclose = () => {
    status.textContent = 'Disconnected'; status.className = 'status-value disconnected';
    setTimeout(connect, 1000);
  };
  ws.onmessage = (msg) => draw(JSON.parse(msg.data));
}
connect();
</script>
</body>
</html>
`
