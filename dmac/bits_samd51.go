//go:build samd51

package dmac

const (
	intPendIDMask = 0x1f
	lvlPriMask    = 0x1f
)

// CRCERR flags a CRC mismatch in monitor mode.
const (
	CRCERR         CRCStatusFlags = 1 << 2
	IntPendCRCERR  IntPendFlags   = 1 << 12
	ChannelCRCERR  ChannelStatus  = 1 << 3
	CRCModeDefault CRCCtrlFlags   = 0 << 14
	CRCMonitor     CRCCtrlFlags   = 2 << 14
	CRCGenerate    CRCCtrlFlags   = 3 << 14
	CRCModeMask    CRCCtrlFlags   = 3 << 14
)

// ChannelCtrlA are the bits of the 32-bit CHCTRLA register. Trigger and
// burst configuration live here.
type ChannelCtrlA uint32

const (
	ChannelSWRST    ChannelCtrlA = chctrlaSWRST
	ChannelENABLE   ChannelCtrlA = chctrlaENABLE
	ChannelRUNSTDBY ChannelCtrlA = chctrlaRUNSTDBY

	TRIGSRCMask   ChannelCtrlA = 0x7f << trigSrcPos
	TRIGACTMask   ChannelCtrlA = 3 << trigActPos
	BURSTLENMask  ChannelCtrlA = 0xf << burstLenPos
	THRESHOLDMask ChannelCtrlA = 3 << thresholdPos

	trigSrcPos   = 8
	trigActPos   = 20
	burstLenPos  = 24
	thresholdPos = 28
)

// Destination write threshold in beats.
const (
	Threshold1 ChannelCtrlA = iota << thresholdPos
	Threshold2
	Threshold4
	Threshold8
)

// BurstLen returns the CHCTRLA bits for bursts of beats beats, 1 to 16.
func BurstLen(beats int) ChannelCtrlA {
	return ChannelCtrlA(beats-1) << burstLenPos & BURSTLENMask
}

const (
	TriggerBlock       TriggerAction = 0
	TriggerBurst       TriggerAction = 2
	TriggerTransaction TriggerAction = 3
)

// ChannelCtrlB holds the software command of a channel.
type ChannelCtrlB uint8

const CMDMask ChannelCtrlB = 3

// ChannelEvCtrl are the bits of the CHEVCTRL register.
type ChannelEvCtrl uint8

const (
	EVACTMask   ChannelEvCtrl = 7 << 0
	EVOMODEMask ChannelEvCtrl = 3 << 4
	EVIE        ChannelEvCtrl = 1 << 6
	EVOE        ChannelEvCtrl = 1 << 7
)
