package server

// clientScript is the browser side of the patch protocol. It forwards
// DOM events from elements carrying data-loom-id and applies incoming
// facet patches. Kept dependency-free so it can be inlined into the
// page shell.
const clientScript = `(function () {
  "use strict";

  var FRAME_EVENT = 1, FRAME_PATCHES = 2, FRAME_PING = 3, FRAME_PONG = 4, FRAME_ERROR = 5;
  var OP_SET_TEXT = 1, OP_SET_ATTR = 2, OP_REMOVE_ATTR = 3, OP_ADD_CLASS = 4,
      OP_REMOVE_CLASS = 5, OP_SET_STYLE = 6, OP_REMOVE_STYLE = 7, OP_SET_HTML = 8;

  var enc = new TextEncoder(), dec = new TextDecoder();

  function Reader(buf) { this.v = new Uint8Array(buf); this.pos = 0; }
  Reader.prototype.byte = function () { return this.v[this.pos++]; };
  Reader.prototype.uvarint = function () {
    var x = 0, s = 0, b;
    do { b = this.v[this.pos++]; x += (b & 0x7f) * Math.pow(2, s); s += 7; } while (b >= 0x80);
    return x;
  };
  Reader.prototype.string = function () {
    var n = this.uvarint();
    var s = dec.decode(this.v.subarray(this.pos, this.pos + n));
    this.pos += n;
    return s;
  };
  Reader.prototype.eof = function () { return this.pos >= this.v.length; };

  function writeUvarint(out, v) {
    while (v >= 0x80) { out.push((v & 0x7f) | 0x80); v = Math.floor(v / 128); }
    out.push(v);
  }
  function writeString(out, s) {
    var b = enc.encode(s);
    writeUvarint(out, b.length);
    for (var i = 0; i < b.length; i++) out.push(b[i]);
  }

  function byId(id) {
    return document.querySelector('[data-loom-id="' + id + '"]');
  }

  function apply(p) {
    var el = byId(p.target);
    if (!el) return;
    switch (p.op) {
      case OP_SET_TEXT: el.textContent = p.value; break;
      case OP_SET_ATTR: el.setAttribute(p.key, p.value); break;
      case OP_REMOVE_ATTR: el.removeAttribute(p.key); break;
      case OP_ADD_CLASS: el.classList.add(p.key); break;
      case OP_REMOVE_CLASS: el.classList.remove(p.key); break;
      case OP_SET_STYLE: el.style.setProperty(p.key, p.value); break;
      case OP_REMOVE_STYLE: el.style.removeProperty(p.key); break;
      case OP_SET_HTML: el.innerHTML = p.value; break;
    }
  }

  function readPatch(r) {
    var p = { op: r.byte(), target: r.string(), key: "", value: "" };
    switch (p.op) {
      case OP_SET_TEXT: case OP_SET_HTML:
        p.value = r.string(); break;
      case OP_SET_ATTR: case OP_SET_STYLE:
        p.key = r.string(); p.value = r.string(); break;
      case OP_REMOVE_ATTR: case OP_REMOVE_STYLE:
      case OP_ADD_CLASS: case OP_REMOVE_CLASS:
        p.key = r.string(); break;
    }
    return p;
  }

  var lastSeq = 0;
  function onPatches(r) {
    var seq = r.uvarint();
    if (seq <= lastSeq) return;
    if (seq !== lastSeq + 1) console.warn("loom: patch gap", lastSeq, "->", seq);
    lastSeq = seq;
    var count = r.uvarint();
    for (var i = 0; i < count; i++) apply(readPatch(r));
  }

  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.binaryType = "arraybuffer";

  ws.onmessage = function (msg) {
    var r = new Reader(msg.data);
    switch (r.byte()) {
      case FRAME_PATCHES: onPatches(r); break;
      case FRAME_PING: ws.send(new Uint8Array([FRAME_PONG])); break;
      case FRAME_ERROR: console.error("loom: " + r.string()); break;
    }
  };

  ws.onclose = function () { console.warn("loom: connection closed"); };

  function forward(id, type) {
    var out = [FRAME_EVENT];
    writeString(out, id);
    writeString(out, type);
    ws.send(new Uint8Array(out));
  }

  document.querySelectorAll("[data-loom-on]").forEach(function (el) {
    var id = el.getAttribute("data-loom-id");
    el.getAttribute("data-loom-on").split(" ").forEach(function (type) {
      el.addEventListener(type, function () { forward(id, type); });
    });
  });
})();`
