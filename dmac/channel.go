package dmac

import "strconv"

// ChannelID identifies a DMA channel.
type ChannelID uint8

// ChannelController is the set of channel operations both hardware
// generations provide. Driver code written against it compiles for either
// build.
type ChannelController interface {
	ID() ChannelID

	Enable()
	Disable()
	Enabled() bool
	Reset()

	SetControl(mask ChannelCtrlA)
	ClearControl(mask ChannelCtrlA)
	Status() ChannelStatus

	IntFlags() ChannelInt
	ClearIntFlags(mask ChannelInt)
	EnableInterrupts(mask ChannelInt)
	DisableInterrupts(mask ChannelInt)
	InterruptsEnabled() ChannelInt

	SetPriority(lvl PriorityLevel)
	SetTrigger(src TriggerSource, act TriggerAction)
	Command(cmd ChannelCmd)

	Trigger()
	Busy() bool
	Pending() bool
}

var _ ChannelController = Channel{}

// A channel id out of range is a programming error, never a runtime
// condition.
func checkChannel(id ChannelID, n int) {
	if int(id) >= n {
		panic("dmac: channel ID must be less than " + strconv.Itoa(n))
	}
}

// Trigger issues a software trigger.
func (c Channel) Trigger() { c.r.Trigger(1 << c.id) }

// Busy reports whether the channel is transferring. Descriptors of a channel
// may only be reused after it stopped being busy.
func (c Channel) Busy() bool { return c.r.Busy()&(1<<c.id) != 0 }

// Pending reports whether the channel has a transfer waiting for arbitration.
func (c Channel) Pending() bool { return c.r.Pending()&(1<<c.id) != 0 }

func (c Channel) ID() ChannelID { return c.id }
