package dmac

// ConfigureCRC sets polynomial, beat size and input source of the CRC
// engine. The engine is disabled while CRCCTRL is written.
func (r *Registers) ConfigureCRC(cfg CRCCtrlFlags) {
	r.disableCRC()
	r.CRCCTRL.Write(cfg)
	r.enableCRC()
}

// SeedCRC sets the initial checksum. CRC-16 uses the lower half.
func (r *Registers) SeedCRC(seed uint32) {
	r.CRCCHKSUM.Write(seed)
}

// WriteCRC feeds one beat into the engine. Only valid with CRCSrcIO.
func (r *Registers) WriteCRC(v uint32) {
	r.CRCDATAIN.Write(v)
}

// CRCSum returns the current checksum.
func (r *Registers) CRCSum() uint32 {
	return r.CRCCHKSUM.Read()
}

// CRCBusy reports whether the engine is still calculating.
func (r *Registers) CRCBusy() bool {
	return r.CRCSTATUS.HasBits(CRCBUSY)
}

// CRCZero reports whether the last checksum was zero, i.e. the data including
// its appended checksum was intact.
func (r *Registers) CRCZero() bool {
	return r.CRCSTATUS.HasBits(CRCZERO)
}

// ClearCRCBusy marks the end of data in I/O mode.
func (r *Registers) ClearCRCBusy() {
	r.CRCSTATUS.Write(CRCBUSY)
}
