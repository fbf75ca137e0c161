package attitude

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNoSamples is returned when a replay source holds no complete sample.
var ErrNoSamples = errors.New("attitude: no samples")

// Replay plays back recorded MPU-6050 bursts at a fixed sample period,
// looping at the end. Yaw is integrated from the z gyro rate because the
// sensor has no heading reference.
type Replay struct {
	frames []Attitude
	period time.Duration
	start  time.Time
}

// NewReplay reads consecutive SampleSize-byte bursts from r. A trailing
// partial burst is ignored.
func NewReplay(r io.Reader, period time.Duration, start time.Time) (*Replay, error) {
	if period <= 0 {
		return nil, fmt.Errorf("replay period must be positive, got %v", period)
	}

	var (
		frames []Attitude
		raw    [SampleSize]byte
		yaw    float64
	)
	dt := period.Seconds()
	for {
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		a := DecodeMPU6050(raw)
		yaw = wrapDegrees(yaw + a.Yaw*dt)
		a.Yaw = yaw
		frames = append(frames, a)
	}

	if len(frames) == 0 {
		return nil, ErrNoSamples
	}
	return &Replay{frames: frames, period: period, start: start}, nil
}

// Len returns the number of recorded samples.
func (r *Replay) Len() int { return len(r.frames) }

// Attitude implements Source.
func (r *Replay) Attitude(now time.Time) Attitude {
	elapsed := now.Sub(r.start)
	if elapsed < 0 {
		elapsed = 0
	}
	i := int(elapsed/r.period) % len(r.frames)
	return r.frames[i]
}
