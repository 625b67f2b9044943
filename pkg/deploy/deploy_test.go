package deploy

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
)

func staticApp(ctx *component.Ctx) *dom.Element {
	return el.Div(ctx.Doc(), el.H1(ctx.Doc(), "hello"))
}

func TestExportWritesIndex(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(ExportConfig{Dir: dir, Title: "site"}, staticApp)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if path != filepath.Join(dir, "index.html") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	page := string(data)
	for _, want := range []string{"<title>site</title>", "<h1>hello</h1>"} {
		if !strings.Contains(page, want) {
			t.Errorf("export missing %q", want)
		}
	}
	if strings.Contains(page, "data-loom-id") {
		t.Error("static export should carry no wire ids")
	}
}

type fakePutter struct {
	puts map[string]string // key -> body
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.puts == nil {
		f.puts = make(map[string]string)
	}
	f.puts[*in.Key] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func TestUploadDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644)
	os.MkdirAll(filepath.Join(dir, "assets"), 0o755)
	os.WriteFile(filepath.Join(dir, "assets", "app.css"), []byte("body{}"), 0o644)

	fake := &fakePutter{}
	u := NewUploader(fake, "my-bucket", "site")

	n, err := u.UploadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if n != 2 {
		t.Errorf("uploaded %d objects, want 2", n)
	}
	if fake.puts["site/index.html"] != "<html></html>" {
		t.Errorf("index body = %q", fake.puts["site/index.html"])
	}
	if _, ok := fake.puts["site/assets/app.css"]; !ok {
		t.Errorf("missing nested object, got keys %v", fake.puts)
	}
}

func TestContentType(t *testing.T) {
	if ct := contentType("a/index.html"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("html content type = %q", ct)
	}
	if ct := contentType("blob"); ct != "application/octet-stream" {
		t.Errorf("fallback content type = %q", ct)
	}
}
