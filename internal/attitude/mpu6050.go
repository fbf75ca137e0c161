package attitude

import (
	"encoding/binary"
	"math"
)

// MPU-6050 full-scale sensitivities at the power-on defaults.
const (
	accelLSBPerG   = 16384.0 // ±2 g
	gyroLSBPerDegS = 131.0   // ±250 °/s
)

// SampleSize is the length of one accel/temp/gyro burst read starting at
// register ACCEL_XOUT_H (0x3B).
const SampleSize = 14

// Sample is one decoded MPU-6050 reading.
type Sample struct {
	AccelG [3]float64 // x, y, z in g
	GyroDS [3]float64 // x, y, z in °/s
}

// ParseMPU6050 decodes a burst read. Registers are big-endian signed words;
// bytes 6-7 hold the die temperature and are ignored.
func ParseMPU6050(raw [SampleSize]byte) Sample {
	word := func(i int) float64 {
		return float64(int16(binary.BigEndian.Uint16(raw[i : i+2])))
	}

	return Sample{
		AccelG: [3]float64{word(0) / accelLSBPerG, word(2) / accelLSBPerG, word(4) / accelLSBPerG},
		GyroDS: [3]float64{word(8) / gyroLSBPerDegS, word(10) / gyroLSBPerDegS, word(12) / gyroLSBPerDegS},
	}
}

// Attitude derives pitch and roll from the gravity vector. The sensor has no
// absolute heading, so Yaw carries the z gyro rate in °/s as a placeholder.
func (s Sample) Attitude() Attitude {
	ax, ay, az := s.AccelG[0], s.AccelG[1], s.AccelG[2]

	return Attitude{
		Pitch: math.Atan2(ax, math.Sqrt(ay*ay+az*az)) * 180 / math.Pi,
		Roll:  math.Atan2(ay, math.Sqrt(ax*ax+az*az)) * 180 / math.Pi,
		Yaw:   s.GyroDS[2],
	}
}

// DecodeMPU6050 decodes a burst read straight to an attitude.
func DecodeMPU6050(raw [SampleSize]byte) Attitude {
	return ParseMPU6050(raw).Attitude()
}
