package sound

// squareWave renders raw PCM for the ebiten mixer: 16-bit little endian,
// two interleaved channels.
func squareWave(sampleRate int, freq float64, durationMs int, volume float64) []byte {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	samples := sampleRate * durationMs / 1000
	amp := int16(volume * 32767)
	halfPeriod := int(float64(sampleRate) / (2 * freq))
	if halfPeriod < 1 {
		halfPeriod = 1
	}

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		v := amp
		if (i/halfPeriod)%2 == 1 {
			v = -amp
		}
		lo, hi := byte(v), byte(v>>8)
		buf[i*4] = lo
		buf[i*4+1] = hi
		buf[i*4+2] = lo
		buf[i*4+3] = hi
	}
	return buf
}
