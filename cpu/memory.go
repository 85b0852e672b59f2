package cpu

// MemoryCapacity is the size of the flat address space.
const MemoryCapacity = 0x10000

// Memory defines the system's memory bank.
// Addresses wrap modulo MemoryCapacity; words are stored little-endian.
type Memory []byte

// SetU8 sets the 8-bit value at the given address.
func (m Memory) SetU8(addr uint16, value uint8) {
	m[addr] = value
}

// U8 returns the 8-bit value at the given address.
func (m Memory) U8(addr uint16) uint8 {
	return m[addr]
}

// SetU16 sets the 16-bit value at the given address, low byte first.
func (m Memory) SetU16(addr uint16, value uint16) {
	m[addr] = byte(value)
	m[addr+1] = byte(value >> 8)
}

// U16 returns the 16-bit value at the given address, low byte first.
func (m Memory) U16(addr uint16) uint16 {
	return uint16(m[addr]) | uint16(m[addr+1])<<8
}

// Write writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Write(address int, p []byte) {
	copy(m[address:], p)
}
