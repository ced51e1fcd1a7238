// This file is part of GameAudio.
//
// GameAudio is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameAudio is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameAudio.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package sdlaudio plays the output of the emulated speaker through the
// default audio device, using SDL.
package sdlaudio

import (
	"encoding/binary"
	"time"

	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const logTag = "sdlaudio"

// the number of buffers that can be queued before the queue is cleared. a
// longer queue means more lag between the emulation and the sound
const maxQueuedBuffers = 4

// Audio outputs sound using SDL. It implements the speaker.Mixer interface.
type Audio struct {
	perm logger.Permission

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// samples converted to bytes for the queue
	data []byte

	// the number of times the queue was cleared because it was too long
	Overruns int
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// bufferLength is the number of samples that SDL requests at a time.
func NewAudio(perm logger.Permission, sampleRate int, bufferLength int) (*Audio, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		perm: perm,
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf(aud.perm, logTag, "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(aud.perm, logTag, "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the speaker.Mixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	aud.data = aud.data[:0]
	for _, s := range samples {
		aud.data = binary.LittleEndian.AppendUint16(aud.data, uint16(s))
	}

	if sdl.GetQueuedAudioSize(aud.id) > uint32(len(aud.data)*maxQueuedBuffers) {
		sdl.ClearQueuedAudio(aud.id)
		aud.Overruns++
	}

	if err := sdl.QueueAudio(aud.id, aud.data); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the speaker.Mixer interface. Queued audio is allowed to
// play out before the device is closed.
func (aud *Audio) EndMixing() error {
	deadline := time.Now().Add(time.Second)
	for sdl.GetQueuedAudioSize(aud.id) > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)

	if aud.Overruns > 0 {
		logger.Logf(aud.perm, logTag, "queue cleared %d times", aud.Overruns)
	}

	return nil
}

// Reset implements the speaker.Mixer interface.
func (aud *Audio) Reset() {
	sdl.ClearQueuedAudio(aud.id)
}
