package datastreams

import "encoding/binary"

// DecodeFullReport splits a wire-format "full report" envelope into its
// opaque 3-word context and the versioned report blob it carries, honoring
// the offset/length indirection described by the wire format: the context
// words are followed by an offset word pointing at a length-prefixed blob,
// rather than the blob following the context directly.
func DecodeFullReport(data []byte) (context [3][32]byte, blob []byte, err error) {
	if len(data) < 128 {
		return context, nil, &DataTooShortError{Field: "full report"}
	}
	copy(context[0][:], data[0:32])
	copy(context[1][:], data[32:64])
	copy(context[2][:], data[64:96])

	offsetWord := data[96:128]
	offset := binary.BigEndian.Uint64(offsetWord[24:32])
	if offset < 128 || offset >= uint64(len(data)) {
		return context, nil, &InvalidLengthError{Field: "offset"}
	}

	lengthWord, err := readWord(data, int(offset))
	if err != nil {
		return context, nil, &InvalidLengthError{Field: "bytes data"}
	}
	length := binary.BigEndian.Uint64(lengthWord[24:32])

	end := offset + 32 + length
	if end > uint64(len(data)) {
		return context, nil, &InvalidLengthError{Field: "bytes data"}
	}

	blob = make([]byte, length)
	copy(blob, data[offset+32:end])
	return context, blob, nil
}

// EncodeFullReport reassembles a full-report envelope from its context and
// blob, always writing a fixed offset of 128: the length word sits at byte
// 128, immediately after the three context words and the offset word, and
// the blob follows the length word. No trailing padding is added.
func EncodeFullReport(context [3][32]byte, blob []byte) []byte {
	const offset = 128

	out := make([]byte, 0, offset+32+len(blob))
	out = append(out, context[0][:]...)
	out = append(out, context[1][:]...)
	out = append(out, context[2][:]...)
	out = append(out, encodeUint64(offset)[:]...)
	out = append(out, encodeUint64(uint64(len(blob)))[:]...)
	out = append(out, blob...)
	return out
}
