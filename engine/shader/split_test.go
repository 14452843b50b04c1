package shader_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollyoak/sprig/engine/shader"
)

func TestSplitTwoSections(t *testing.T) {
	src, err := shader.Split("#shader vertex\nA\n#shader fragment\nB\n")
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestSplitVerbatimBodies(t *testing.T) {
	artifact := "#shader vertex\n" +
		"#version 330 core\n" +
		"void main() {\n" +
		"    gl_Position = vec4(0.0);\n" +
		"}\n" +
		"#shader fragment\n" +
		"#version 330 core\n" +
		"void main() {}\n"

	src, err := shader.Split(artifact)
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\nvoid main() {\n    gl_Position = vec4(0.0);\n}\n", src.Vertex)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", src.Fragment)
}

func TestSplitOrderIndependent(t *testing.T) {
	a, err := shader.Split("#shader vertex\nA\n#shader fragment\nB\n")
	require.NoError(t, err)
	b, err := shader.Split("#shader fragment\nB\n#shader vertex\nA\n")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSplitRepeatedStageConcatenates(t *testing.T) {
	src, err := shader.Split("#shader vertex\nA\n#shader fragment\nB\n#shader vertex\nC\n")
	require.NoError(t, err)
	assert.Equal(t, "A\nC\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestSplitMissingSectionIsEmpty(t *testing.T) {
	src, err := shader.Split("#shader vertex\nA\n")
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestSplitEmptyArtifact(t *testing.T) {
	src, err := shader.Split("")
	require.NoError(t, err)
	assert.Empty(t, src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestSplitLeadingBlankLinesDiscarded(t *testing.T) {
	src, err := shader.Split("\n  \n#shader vertex\nA\n")
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
}

func TestSplitBodyBeforeDirective(t *testing.T) {
	_, err := shader.Split("void main() {}\n#shader vertex\nA\n")
	assert.ErrorIs(t, err, shader.ErrMalformedSource)
}

func TestSplitUnknownDirectiveKeepsCursor(t *testing.T) {
	// A #shader line naming neither stage leaves the cursor where it was.
	src, err := shader.Split("#shader vertex\nA\n#shader geometry\nB\n")
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "none", shader.StageNone.String())
	assert.Equal(t, "vertex", shader.StageVertex.String())
	assert.Equal(t, "fragment", shader.StageFragment.String())
}

func TestSplitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nA\n#shader fragment\nB\n"), 0o644))

	src, err := shader.SplitFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestSplitFileMissing(t *testing.T) {
	_, err := shader.SplitFile(filepath.Join(t.TempDir(), "nope.shader"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
