package showcase

// CSS is the stylesheet for the showcase page. The dynamic styles
// example drives --box-hue and the odd class from signals; everything
// else is static chrome.
const CSS = `body {
  font-family: system-ui, sans-serif;
  max-width: 640px;
  margin: 2rem auto;
  padding: 0 1rem;
}
section {
  border-top: 1px solid #ddd;
  padding: 1rem 0;
}
button {
  padding: 0.25rem 0.75rem;
}
.count, .double {
  font-variant-numeric: tabular-nums;
  margin-right: 1rem;
}
.box {
  height: 2rem;
  background: hsl(var(--box-hue, 200), 70%, 60%);
  transition: width 0.15s;
}
.box.odd {
  outline: 2px dashed #333;
}
.injected {
  background: #fffbe6;
  padding: 0.5rem;
}
`
