//go:build !samd51

package dmac

// CRCENABLE enables the CRC module.
const CRCENABLE CtrlFlags = 1 << 2

const (
	intPendIDMask = 0x0f
	lvlPriMask    = 0x0f
)

// QOSCTRL
const (
	WRBQOSMask uint8 = 3 << 0 // write-back quality of service
	FQOSMask   uint8 = 3 << 2 // fetch quality of service
	DQOSMask   uint8 = 3 << 4 // data transfer quality of service
)

// ChannelCtrlA are the bits of the 8-bit CHCTRLA register.
type ChannelCtrlA uint8

const (
	ChannelSWRST    ChannelCtrlA = chctrlaSWRST
	ChannelENABLE   ChannelCtrlA = chctrlaENABLE
	ChannelRUNSTDBY ChannelCtrlA = chctrlaRUNSTDBY
)

// ChannelCtrlB are the bits of the 32-bit CHCTRLB register. Trigger, priority
// level and event configuration all live here.
type ChannelCtrlB uint32

const (
	EVACTMask ChannelCtrlB = 7 << 0
	EVIE      ChannelCtrlB = 1 << 3
	EVOE      ChannelCtrlB = 1 << 4

	LVLMask     ChannelCtrlB = 3 << lvlPos
	TRIGSRCMask ChannelCtrlB = 0x3f << trigSrcPos
	TRIGACTMask ChannelCtrlB = 3 << trigActPos
	CMDMask     ChannelCtrlB = 3 << cmdPos

	lvlPos     = 5
	trigSrcPos = 8
	trigActPos = 22
	cmdPos     = 24
)

const (
	TriggerBlock       TriggerAction = 0
	TriggerBeat        TriggerAction = 2
	TriggerTransaction TriggerAction = 3
)
