package assetdb

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/aiff"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
	"gopkg.in/yaml.v3"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

var audioCompressionFormats = map[int64]m.AudioCompressionFormat{
	0: m.AudioPCM,
	1: m.AudioVorbis,
	2: m.AudioADPCM,
	3: m.AudioMP3,
	4: m.AudioVAG,
	5: m.AudioHEVAG,
	6: m.AudioXMA,
	7: m.AudioAAC,
	8: m.AudioGCADPCM,
	9: m.AudioATRAC9,
}

// buildTargetGroups maps build target names to the group ids used as keys of
// per-platform importer overrides.
var buildTargetGroups = map[string]string{
	"standalone": "1",
	"ios":        "4",
	"android":    "7",
	"webgl":      "13",
	"wsa":        "14",
	"ps4":        "19",
	"xboxone":    "21",
	"tvos":       "25",
	"switch":     "27",
}

// audioReaders read the stream header of each container with a decoder.
// Tracker modules have none and yield an empty clip.
var audioReaders = map[string]func(io.ReadSeeker) (*m.AudioClip, error){
	".wav":  readWAV,
	".aif":  readAIFF,
	".aiff": readAIFF,
	".ogg":  readOggVorbis,
	".mp3":  readMP3,
	".flac": readFLAC,
}

func (db *Database) loadAudio(p m.Path) (*m.AudioClip, error) {
	read, ok := audioReaders[p.Ext()]
	if !ok {
		slog.Debug("No header reader for audio container", "path", p)
		return &m.AudioClip{}, nil
	}

	// #nosec G304 - project asset path
	f, err := os.Open(db.abs(p))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	clip, err := read(f)
	if err != nil {
		slog.Warn("Could not read audio header", "path", p, "error", err)
		return &m.AudioClip{}, nil
	}

	return clip, nil
}

func newAudioClip(channels, frequency, samples int) *m.AudioClip {
	clip := &m.AudioClip{Channels: channels, Frequency: frequency, SampleCount: samples}
	if frequency > 0 {
		clip.Length = float64(samples) / float64(frequency)
	}

	return clip
}

func readWAV(r io.ReadSeeker) (*m.AudioClip, error) {
	d := wav.NewDecoder(r)
	if err := d.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}

	frameSize := int(d.NumChans) * int(d.BitDepth) / 8
	if frameSize <= 0 {
		return nil, errors.New("wav has no sample layout")
	}

	return newAudioClip(int(d.NumChans), int(d.SampleRate), int(d.PCMSize)/frameSize), nil
}

func readAIFF(r io.ReadSeeker) (*m.AudioClip, error) {
	d := aiff.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errors.New("not an aiff file")
	}

	return newAudioClip(int(d.NumChans), int(d.SampleRate), int(d.NumSampleFrames)), nil
}

func readOggVorbis(r io.ReadSeeker) (*m.AudioClip, error) {
	samples, format, err := oggvorbis.GetLength(r)
	if err != nil {
		return nil, fmt.Errorf("read ogg vorbis: %w", err)
	}

	return newAudioClip(format.Channels, format.SampleRate, int(samples)), nil
}

// The mp3 decoder always yields interleaved 16-bit stereo.
const (
	mp3Channels   = 2
	mp3FrameBytes = 4
)

func readMP3(r io.ReadSeeker) (*m.AudioClip, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("read mp3: %w", err)
	}

	return newAudioClip(mp3Channels, d.SampleRate(), int(d.Length()/mp3FrameBytes)), nil
}

func readFLAC(r io.ReadSeeker) (*m.AudioClip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("read flac: %w", err)
	}

	defer func() { _ = stream.Close() }()

	info := stream.Info

	return newAudioClip(int(info.NChannels), int(info.SampleRate), int(info.NSamples)), nil
}

// AudioImportSettings returns the per-platform override of the clip's
// importer for buildTarget, or its default settings.
func (db *Database) AudioImportSettings(path m.Path, buildTarget string) (m.AudioImportSettings, error) {
	settings := m.AudioImportSettings{CompressionFormat: m.AudioVorbis, Quality: 1}

	meta, err := db.meta(path.Normalize())
	if err != nil {
		return settings, err
	}

	importer := child(meta, "AudioImporter")
	if importer == nil {
		return settings, nil
	}

	applyAudioSettings(&settings, child(importer, "defaultSettings"))

	group := buildTargetGroup(buildTarget)
	if override := child(child(importer, "platformSettingOverrides"), group); override != nil {
		applyAudioSettings(&settings, override)
	}

	return settings, nil
}

func applyAudioSettings(settings *m.AudioImportSettings, n *yaml.Node) {
	if n == nil {
		return
	}

	if v := child(n, "compressionFormat"); v != nil {
		if format, ok := audioCompressionFormats[integer(v)]; ok {
			settings.CompressionFormat = format
		}
	}

	if v := child(n, "quality"); v != nil {
		settings.Quality = float(v)
	}
}

// buildTargetGroup accepts a group name or a numeric group id.
func buildTargetGroup(target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if group, ok := buildTargetGroups[target]; ok {
		return group
	}

	if _, err := strconv.Atoi(target); err == nil {
		return target
	}

	return buildTargetGroups["standalone"]
}
