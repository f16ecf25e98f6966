package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

func newTable(buf *bytes.Buffer, header []string, alignments ...int) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	if len(alignments) > 0 {
		table.SetColumnAlignment(alignments)
	}

	return table
}

// renderScanSummary renders one row per asset kind with its count and size.
func renderScanSummary(report *m.Report) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Kind", "Files", "Size"},
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT)

	var total int64

	for _, kind := range m.AssetKinds {
		size := report.TotalSize(kind)
		total += size

		table.Append([]string{string(kind), strconv.Itoa(report.Count(kind)), formatSize(size)})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(report.Len()), formatSize(total)})
	table.Render()

	return buf.String()
}

// renderBuildSummary renders the copy statistics of a build.
func renderBuildSummary(result m.BuildResult) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Step", "Files"}, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT)
	table.Append([]string{"Manifest", strconv.Itoa(result.Manifest)})
	table.Append([]string{"Copied", strconv.Itoa(result.Stats.Copied)})
	table.Append([]string{"Rescaled", strconv.Itoa(result.Stats.Rescaled)})
	table.Append([]string{"Already present", strconv.Itoa(result.Stats.Skipped)})
	table.Append([]string{"Sidecars", strconv.Itoa(result.Stats.MetaCopied)})
	table.Append([]string{"Directories", strconv.Itoa(result.Stats.Directories)})
	table.Append([]string{"Failed", strconv.Itoa(len(result.Failed))})
	table.Render()

	var b strings.Builder

	fmt.Fprintf(&b, "Repro project: %s\n\n", result.Target)
	b.WriteString(buf.String())

	for _, failure := range result.Failed {
		fmt.Fprintf(&b, "  not copied: %s (%v)\n", failure.Path, failure.Err)
	}

	return b.String()
}

// renderRecords renders the records of one kind with kind specific columns.
func renderRecords(kind m.AssetKind, records []m.AssetRecord) string {
	var buf bytes.Buffer

	header, row := recordColumns(kind)
	table := newTable(&buf, header)

	for _, record := range records {
		table.Append(row(record))
	}

	table.SetFooter(append([]string{fmt.Sprintf("%d %s", len(records), kind)}, make([]string, len(header)-1)...))
	table.Render()

	return buf.String()
}

//nolint:funlen // One column layout per asset kind.
func recordColumns(kind m.AssetKind) ([]string, func(m.AssetRecord) []string) {
	switch kind {
	case m.KindTexture2D:
		return []string{"Path", "Size", "Width", "Height", "Format", "Dimension"}, func(r m.AssetRecord) []string {
			t := r.Texture
			return []string{string(r.Path), formatSize(r.Size), strconv.Itoa(t.Width), strconv.Itoa(t.Height), string(t.Format), string(t.Dimension)}
		}
	case m.KindMaterial:
		return []string{"Path", "Size", "Shader", "Textures"}, func(r m.AssetRecord) []string {
			return []string{string(r.Path), formatSize(r.Size), string(r.Material.ShaderPath), strconv.Itoa(len(r.Material.TexturePaths))}
		}
	case m.KindMeshBundle:
		return []string{"Path", "Size", "Meshes", "Triangles", "Animations"}, func(r m.AssetRecord) []string {
			triangles := 0
			for _, mesh := range r.MeshBundle.Meshes {
				triangles += mesh.TriangleCount
			}

			return []string{string(r.Path), formatSize(r.Size), strconv.Itoa(r.MeshBundle.MeshCount), strconv.Itoa(triangles), strconv.Itoa(r.MeshBundle.AnimationCount)}
		}
	case m.KindAnimationClip:
		return []string{"Path", "Size", "Frames", "Duration"}, func(r m.AssetRecord) []string {
			return []string{string(r.Path), formatSize(r.Size), strconv.Itoa(r.AnimationClip.FrameCount), formatSeconds(r.AnimationClip.Duration)}
		}
	case m.KindAudioClip:
		return []string{"Path", "Size", "Duration", "Channels", "Rate", "Compression", "Quality"}, func(r m.AssetRecord) []string {
			a := r.AudioClip
			return []string{
				string(r.Path), formatSize(r.Size), formatSeconds(a.Duration), strconv.Itoa(a.Channels),
				strconv.Itoa(a.SampleRate), string(a.CompressionFormat), strconv.FormatFloat(a.CompressionQuality, 'f', 2, 64),
			}
		}
	case m.KindPrefab:
		return []string{"Path", "Size", "Meshes", "Materials"}, func(r m.AssetRecord) []string {
			return []string{string(r.Path), formatSize(r.Size), strconv.Itoa(len(r.Prefab.MeshPaths)), strconv.Itoa(len(r.Prefab.MaterialPaths))}
		}
	}

	return []string{"Path", "Size"}, func(r m.AssetRecord) []string {
		return []string{string(r.Path), formatSize(r.Size)}
	}
}

// renderReport renders every requested kind that has records.
func renderReport(report *m.Report, kinds []m.AssetKind) string {
	if len(kinds) == 0 {
		kinds = m.AssetKinds
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Report %s of %s (%s)\n\n", report.RunID, report.Root, report.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	shown := 0

	for _, kind := range kinds {
		records := report.Records(kind)
		if len(records) == 0 {
			continue
		}

		b.WriteString(renderRecords(kind, records))
		b.WriteString("\n")

		shown++
	}

	if shown == 0 {
		b.WriteString("No records\n")
	}

	return b.String()
}

func renderSettings(settings m.Settings) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Setting", "Value"})
	table.Append([]string{"Project name", settings.ProjectName})
	table.Append([]string{"Location", settings.ProjectPath})
	table.Append([]string{"Target", settings.TargetPath()})
	table.Append([]string{"Open after export", strconv.FormatBool(settings.OpenAfterExport)})
	table.Append([]string{"Texture scale", m.TextureScaleName(settings.TextureScale)})

	for _, item := range settings.InputItems {
		table.Append([]string{"Input", item.String()})
	}

	for _, item := range settings.ProjectItems {
		table.Append([]string{"Always include", item.String()})
	}

	table.Render()

	return buf.String()
}

func formatSize(size int64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64) + "s"
}
