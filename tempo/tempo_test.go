package tempo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodes120BPM(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(500000.0, BPMToUs(120.0))
	assert.Equal([NumBytes]byte{0x07, 0xA1, 0x20}, FromBPM(120.0))
}

func TestBytesRoundTripMicroseconds(t *testing.T) {
	cases := []int{1, 0x20, 0xA120, 0x07A120, 0xFFFFFF}

	for _, us := range cases {
		t.Run(fmt.Sprintf("us %v", us), func(t *testing.T) {
			b := UsToBytes(us)
			assert.Equal(t, us, BytesToUs(b[:]))
		})
	}
}

func TestBPMSurvivesEncodeDecode(t *testing.T) {
	for bpm := 20.0; bpm <= 400.0; bpm += 7.3 {
		b := FromBPM(bpm)
		got := ToBPM(b[:])
		// Encoding truncates to whole microseconds, so allow a little
		// slack at the fast end.
		assert.InDelta(t, bpm, got, 0.01)
	}
}

func TestErrorSentinels(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, BPMToUs(0.0))
	assert.Equal(0.0, BPMToUs(-10.0))
	assert.Equal(0.0, UsToBPM(0.0))
	assert.Equal(0, BytesToUs([]byte{0x07, 0xA1}))
	assert.Equal(0, BytesToUs(nil))
	assert.Equal(0.0, ToBPM([]byte{0, 0, 0}))
}
