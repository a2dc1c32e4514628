package matrix

// DeviceMatrix is what stamps are loaded into. Indices are 0-based.
type DeviceMatrix interface {
	AddComplexElement(i, j int, value complex128)
	AddComplexRHS(i int, value complex128)
}
