package crypto

// checksumTable is indexed by bits 16-19 of the tick key.
var checksumTable = [16]byte{
	'f', 'X', '1', 'p', 'G', 't', 'd', 'S',
	'5', 'C', 'A', 'P', '4', '_', 'V', 'L',
}

// Checksum returns the trailing check character for a tick key.
func Checksum(key uint32) byte {
	return checksumTable[(key&0x000F0000)>>16]
}
