package dmac

// CtrlFlags are the bits of the CTRL register.
type CtrlFlags uint16

const (
	SWRST     CtrlFlags = 1 << 0 // software reset, only while DMAENABLE is clear
	DMAENABLE CtrlFlags = 1 << 1
)

// Priority level enable bits of CTRL.
const (
	LVLEN0 CtrlFlags = 1 << (iota + 8)
	LVLEN1
	LVLEN2
	LVLEN3

	LVLENAll = LVLEN0 | LVLEN1 | LVLEN2 | LVLEN3
)

// CRCCtrlFlags are the bits of the CRCCTRL register.
type CRCCtrlFlags uint16

const (
	CRCBeatByte     CRCCtrlFlags = 0 << 0
	CRCBeatHalfWord CRCCtrlFlags = 1 << 0
	CRCBeatWord     CRCCtrlFlags = 2 << 0
	CRCBeatMask     CRCCtrlFlags = 3 << 0

	CRC16       CRCCtrlFlags = 0 << 2 // CRC-CCITT
	CRC32       CRCCtrlFlags = 1 << 2 // IEEE 802.3
	CRCPolyMask CRCCtrlFlags = 3 << 2

	CRCSrcNone CRCCtrlFlags = 0x00 << 8
	CRCSrcIO   CRCCtrlFlags = 0x01 << 8
	CRCSrcMask CRCCtrlFlags = 0x3f << 8

	crcSrcChannel = 0x20
)

// CRCSrcChannel selects the data moved by channel id as CRC input. It panics
// if id is out of range.
func CRCSrcChannel(id ChannelID) CRCCtrlFlags {
	checkChannel(id, tableChannels)
	return CRCCtrlFlags(crcSrcChannel+uint16(id)) << 8 & CRCSrcMask
}

// CRCStatusFlags are the bits of the CRCSTATUS register. Writing one clears a
// flag.
type CRCStatusFlags uint8

const (
	CRCBUSY CRCStatusFlags = 1 << 0
	CRCZERO CRCStatusFlags = 1 << 1
)

// DBGCTRL
const DBGRUN uint8 = 1 << 0

// IntPendFlags are the bits of the INTPEND register. On read the channel id
// field holds the lowest channel with a pending interrupt. On write it selects
// the channel whose TERR, TCMPL or SUSP flags are cleared by writing one.
type IntPendFlags uint16

const (
	TERR  IntPendFlags = 1 << 8
	TCMPL IntPendFlags = 1 << 9
	SUSP  IntPendFlags = 1 << 10
	FERR  IntPendFlags = 1 << 13
	BUSY  IntPendFlags = 1 << 14
	PEND  IntPendFlags = 1 << 15
)

// ChannelID returns the channel the pending interrupt belongs to.
func (f IntPendFlags) ChannelID() ChannelID { return ChannelID(f & intPendIDMask) }

// ChannelInt are the bits of CHINTENCLR, CHINTENSET and CHINTFLAG.
type ChannelInt uint8

const (
	ChannelTERR  ChannelInt = 1 << 0 // transfer error
	ChannelTCMPL ChannelInt = 1 << 1 // transfer complete
	ChannelSUSP  ChannelInt = 1 << 2 // channel suspend

	ChannelIntAll = ChannelTERR | ChannelTCMPL | ChannelSUSP
)

// ChannelStatus are the bits of the read-only CHSTATUS register.
type ChannelStatus uint8

const (
	ChannelPEND ChannelStatus = 1 << 0
	ChannelBUSY ChannelStatus = 1 << 1
	ChannelFERR ChannelStatus = 1 << 2 // descriptor fetch error
)

// Common bits of CHCTRLA. Their positions are identical on both generations
// while the register width is not.
const (
	chctrlaSWRST    = 1 << 0
	chctrlaENABLE   = 1 << 1
	chctrlaRUNSTDBY = 1 << 6
)

// PriorityLevel is a channel's arbitration level. Level 3 is the highest.
type PriorityLevel uint8

const (
	Level0 PriorityLevel = iota
	Level1
	Level2
	Level3
)

// TriggerSource is the peripheral trigger of a channel. Zero means software
// or event trigger only. Numbers are listed in the datasheet's DMAC trigger
// table.
type TriggerSource uint8

// TriggerAction selects what a single trigger transfers.
type TriggerAction uint8

// ChannelCmd is a software command for a channel.
type ChannelCmd uint8

const (
	CmdNoAction ChannelCmd = 0
	CmdSuspend  ChannelCmd = 1
	CmdResume   ChannelCmd = 2
)

// ActiveStatus is the decoded content of the read-only ACTIVE register.
type ActiveStatus uint32

const (
	activeABUSY = 1 << 15
)

// Levels returns the priority levels which are executing or pending.
func (a ActiveStatus) Levels() uint8 { return uint8(a & 0xf) }

// ChannelID is the channel currently being serviced, if Busy.
func (a ActiveStatus) ChannelID() ChannelID { return ChannelID(a >> 8 & 0x1f) }

// Busy reports whether a channel is being serviced.
func (a ActiveStatus) Busy() bool { return a&activeABUSY != 0 }

// Beats is the remaining beat count of the active channel, if Busy.
func (a ActiveStatus) Beats() uint16 { return uint16(a >> 16) }

// LevelPriority returns the PRICTRL0 bits giving ch the highest priority in
// level lvl.
func LevelPriority(lvl PriorityLevel, ch ChannelID) uint32 {
	return uint32(ch&lvlPriMask) << (8 * uint(lvl&3))
}

// RoundRobin returns the PRICTRL0 bit enabling round-robin scheduling in
// level lvl.
func RoundRobin(lvl PriorityLevel) uint32 {
	return 1 << (8*uint(lvl&3) + 7)
}
