package world

// EntityId encodes both the character kind (upper 32 bits) and a per-scene
// serial (lower 32 bits). The zero value is never allocated and means "none".
type EntityId uint64

// NewEntityId creates an EntityId from a kind and a serial.
func NewEntityId(kind Kind, serial uint32) EntityId {
	return EntityId(uint64(kind)<<32 | uint64(serial))
}

// Kind extracts the kind the entity was created with.
func (e EntityId) Kind() Kind {
	return Kind(e >> 32)
}

// Serial extracts the allocation serial.
func (e EntityId) Serial() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Valid reports whether e refers to an allocated entity.
func (e EntityId) Valid() bool {
	return e.Serial() != 0
}
