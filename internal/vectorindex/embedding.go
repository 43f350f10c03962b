package vectorindex

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

const Dimension = 384

// Embed derives a deterministic pseudo-embedding from an md5 digest of
// the text. Good enough for equality-filtered lookups; a real embedding
// model would replace this if similarity search ever mattered here.
func Embed(text string) []float64 {
	sum := md5.Sum([]byte(text))
	hexDigest := hex.EncodeToString(sum[:])

	embedding := make([]float64, 0, Dimension)
	for i := 0; i+2 <= len(hexDigest); i += 2 {
		v, _ := strconv.ParseInt(hexDigest[i:i+2], 16, 64)
		val := float64(v) / 255.0
		for j := 0; j < 12; j++ {
			embedding = append(embedding, val)
		}
	}

	for len(embedding) < Dimension {
		embedding = append(embedding, 0.0)
	}
	return embedding[:Dimension]
}
