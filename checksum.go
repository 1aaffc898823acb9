package lsmcore

import "hash/crc32"

// castagnoliTable backs every on-disk checksum in this package. CRC32C
// gives stable cross-platform corruption detection, unlike a
// process-local string hash.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

func checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoliTable)
}
