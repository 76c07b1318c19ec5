package modem

import "chirpbench/internal/dsp"

// demodulate attempts to read one frame from waveform under prof. It returns
// the payload and true only when the marker symbols, the announced length and
// the payload CRC all check out.
func demodulate(prof profile, waveform []float64) ([]byte, bool) {
	span := prof.span()
	available := len(waveform) / span
	if available < headerNibbles+trailerNibbles {
		return nil, false
	}

	readNibble := func(i int) byte {
		return detectSymbol(prof, waveform[i*span:(i+1)*span])
	}

	if readNibble(0) != markerNibble0 || readNibble(1) != markerNibble1 {
		return nil, false
	}

	length := int(readNibble(2))<<4 | int(readNibble(3))
	if length > prof.maxPayload {
		return nil, false
	}
	needed := headerNibbles + 2*length + trailerNibbles
	if available < needed {
		return nil, false
	}

	payload := make([]byte, length)
	for i := 0; i < length; i++ {
		hi := readNibble(headerNibbles + 2*i)
		lo := readNibble(headerNibbles + 2*i + 1)
		payload[i] = hi<<4 | lo
	}

	crc := readNibble(headerNibbles+2*length)<<4 | readNibble(headerNibbles+2*length+1)
	if crc != crc8(payload) {
		return nil, false
	}
	return payload, true
}

// detectSymbol picks the nibble whose tone carries the most energy across the
// repeated windows of one symbol span. Powers from repeated windows are
// summed, i.e. non-coherent combining.
func detectSymbol(prof profile, span []float64) byte {
	var best byte
	var bestPower float64
	for v := 0; v < toneCount; v++ {
		var power float64
		for r := 0; r < prof.repeat; r++ {
			window := span[r*prof.symbolLen : (r+1)*prof.symbolLen]
			power += dsp.GoertzelPower(window, prof.baseBin()+v)
		}
		if power > bestPower {
			bestPower = power
			best = byte(v)
		}
	}
	return best
}
