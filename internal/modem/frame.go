package modem

// Frame layout constants, in nibbles.
const (
	toneCount = 16 // one tone per nibble value

	markerNibble0 = 0x2
	markerNibble1 = 0xD

	headerNibbles  = 4 // marker (2) + payload length (2)
	trailerNibbles = 2 // CRC-8 of the payload
)

// frameNibbles returns the complete nibble sequence for a payload: marker,
// length byte, payload bytes high-nibble first, CRC-8.
func frameNibbles(payload []byte) []byte {
	nibbles := make([]byte, 0, headerNibbles+2*len(payload)+trailerNibbles)
	nibbles = append(nibbles, markerNibble0, markerNibble1)
	nibbles = appendByteNibbles(nibbles, byte(len(payload)))
	for _, b := range payload {
		nibbles = appendByteNibbles(nibbles, b)
	}
	return appendByteNibbles(nibbles, crc8(payload))
}

func appendByteNibbles(dst []byte, b byte) []byte {
	return append(dst, b>>4, b&0x0F)
}

// crc8 computes CRC-8 with polynomial 0x07 (CRC-8/SMBUS), zero init.
func crc8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x07
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
