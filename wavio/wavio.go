// Package wavio is the WAV file I/O shell around the tape decoder/encoder
// core. The core packages never import this package; only the CLI wires
// them together, keeping the decode/encode algorithms sample-source
// agnostic.
package wavio

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// SampleRate is the sample rate used for generated tape audio.
const SampleRate = 44100

const pcmBufFrames = 4096

// ReadMono decodes channel from the WAV file at path, returning its samples
// as signed 16-bit PCM and the file's sample rate.
func ReadMono(path string, channel int) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, errors.Errorf("invalid WAV file %q", path)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, 0, errors.Wrap(err, "seeking to PCM data")
	}

	nchan := int(dec.NumChans)
	if nchan == 0 {
		return nil, 0, errors.Errorf("WAV file %q reports 0 channels", path)
	}
	if channel < 0 || channel >= nchan {
		return nil, 0, errors.Errorf("channel %d out of range for %d-channel file", channel, nchan)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nchan, SampleRate: int(dec.SampleRate)},
		Data:           make([]int, pcmBufFrames*nchan),
		SourceBitDepth: int(dec.BitDepth),
	}

	var samples []int16
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, 0, errors.Wrap(err, "reading PCM buffer")
		}
		if n == 0 {
			break
		}
		for i := channel; i < n; i += nchan {
			samples = append(samples, int16(buf.Data[i]))
		}
	}

	return samples, int(dec.SampleRate), nil
}

// WriteMono encodes samples as a mono 16-bit PCM WAV file at path.
func WriteMono(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "writing PCM buffer")
	}
	return errors.Wrap(enc.Close(), "closing WAV encoder")
}

// WriteInterleaved writes a multi-channel 16-bit PCM debug WAV, one
// []int16 slice per channel, all the same length. It backs the decoder's
// --debug-wave option.
func WriteInterleaved(path string, channels [][]int16, sampleRate int) error {
	if len(channels) == 0 {
		return errors.New("no channels to write")
	}
	nchan := len(channels)
	nframes := len(channels[0])

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, nchan, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nchan, SampleRate: sampleRate},
		Data:           make([]int, nframes*nchan),
		SourceBitDepth: 16,
	}
	for frame := 0; frame < nframes; frame++ {
		for ch := 0; ch < nchan; ch++ {
			buf.Data[frame*nchan+ch] = int(channels[ch][frame])
		}
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "writing PCM buffer")
	}
	return errors.Wrap(enc.Close(), "closing WAV encoder")
}
