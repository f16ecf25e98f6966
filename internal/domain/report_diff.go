package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const defaultDiffContext = 3

// DiffReports renders both reports as text, one line per record, and returns
// their unified diff. Identical reports yield an empty string.
func DiffReports(before, after *m.Report, fromName, toName string, contextLines int) (string, error) {
	if contextLines <= 0 {
		contextLines = defaultDiffContext
	}

	diff := difflib.UnifiedDiff{
		A:        ReportLines(before),
		B:        ReportLines(after),
		FromFile: fromName,
		ToFile:   toName,
		Context:  contextLines,
	}

	return difflib.GetUnifiedDiffString(diff)
}

// ReportLines renders a report as stable text lines, grouped by kind.
func ReportLines(report *m.Report) []string {
	var lines []string

	for _, kind := range m.AssetKinds {
		records := report.Records(kind)
		lines = append(lines, fmt.Sprintf("[%s] %d\n", kind, len(records)))

		for _, record := range records {
			lines = append(lines, recordLine(record)+"\n")
		}
	}

	return lines
}

func recordLine(r m.AssetRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s size=%d", r.Path, r.Size)

	switch {
	case r.Texture != nil:
		fmt.Fprintf(&b, " %dx%d %s %s", r.Texture.Width, r.Texture.Height, r.Texture.Format, r.Texture.Dimension)
	case r.Material != nil:
		fmt.Fprintf(&b, " shader=%s textures=%s", r.Material.ShaderPath, joinPaths(r.Material.TexturePaths))
	case r.MeshBundle != nil:
		fmt.Fprintf(&b, " meshes=%d animations=%d", r.MeshBundle.MeshCount, r.MeshBundle.AnimationCount)

		for _, mesh := range r.MeshBundle.Meshes {
			fmt.Fprintf(&b, " mesh(%s sub=%d v=%d t=%d)", mesh.Name, mesh.SubMeshCount, mesh.VertexCount, mesh.TriangleCount)
		}

		for _, anim := range r.MeshBundle.Animations {
			fmt.Fprintf(&b, " anim(%s frames=%d %.3fs)", anim.Name, anim.FrameCount, anim.Duration)
		}
	case r.AnimationClip != nil:
		fmt.Fprintf(&b, " frames=%d %.3fs", r.AnimationClip.FrameCount, r.AnimationClip.Duration)
	case r.AudioClip != nil:
		a := r.AudioClip
		fmt.Fprintf(&b, " %.3fs ch=%d rate=%d samples=%d %s q=%.2f",
			a.Duration, a.Channels, a.SampleRate, a.SampleCount, a.CompressionFormat, a.CompressionQuality)
	case r.Prefab != nil:
		fmt.Fprintf(&b, " meshes=%s materials=%s", joinPaths(r.Prefab.MeshPaths), joinPaths(r.Prefab.MaterialPaths))
	}

	return b.String()
}

func joinPaths(paths []m.Path) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = string(p)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
