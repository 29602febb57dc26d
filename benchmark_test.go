package viewfinder

import (
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkResolverLookup(b *testing.B) {
	miss := b.TempDir()
	root := b.TempDir()
	path := filepath.Join(root, "home.html")
	if err := os.WriteFile(path, []byte("<p>hi</p>"), 0600); err != nil {
		b.Fatal(err)
	}
	roots := []string{miss, root}
	var r Resolver
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Lookup("home.html", roots)
	}
}

func BenchmarkNew(b *testing.B) {
	root := b.TempDir()
	if err := os.WriteFile(filepath.Join(root, "home.html"), []byte("<p>hi</p>"), 0600); err != nil {
		b.Fatal(err)
	}
	reg := NewRegistry()
	reg.Bind("html", &stubEngine{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New("home.html", WithEngines(reg), WithRoots(root))
	}
}
