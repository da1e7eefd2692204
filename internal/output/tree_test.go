package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("widgets", nil))
}

func TestRenderFileTree_Structure(t *testing.T) {
	files := map[string]string{
		"package.json":        "Package manifest",
		"README.md":           "",
		"src/index.ts":        "Source stub",
		"tests/index.test.ts": "Test stub",
	}

	out := RenderFileTree("widgets", files)

	assert.Contains(t, out, "widgets/")
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "tests/")
	assert.Contains(t, out, "index.test.ts")

	// Directories render before files.
	srcIdx := strings.Index(out, "src/")
	pkgIdx := strings.Index(out, "package.json")
	assert.Less(t, srcIdx, pkgIdx)
}

func TestRenderFileTree_DescriptionAlignment(t *testing.T) {
	files := map[string]string{
		"a.txt": "described",
	}

	out := RenderFileTree("pkg", files)

	// Description starts at column 30 when the path is short enough.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "described") {
			assert.GreaterOrEqual(t, strings.Index(line, "described"), 30-1)
		}
	}
}
