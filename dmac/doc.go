// Package dmac provides typed access to the DMA controller of the Microchip
// SAM D21 and SAM D51 microcontrollers.
//
// It covers the register block of the peripheral and the descriptor memory
// the controller fetches on its own. It is not a driver: there is no transfer
// queue and no completion notification. All hardware capabilities are exposed
// directly and in general unsafe. Use a higher level driver to move data.
//
// The hardware generation is selected at build time. The default build targets
// the SAM D21, where per-channel registers are shared and a channel must be
// selected through CHID first. Build with the samd51 tag to target the SAM D51,
// where every channel owns its own register block.
//
// Nothing in this package synchronizes access to the hardware. Main code and
// interrupt handlers that touch the same register must be serialized by the
// caller, usually by masking interrupts.
package dmac

//go:generate go run mkregs.go

// SAM D21/D51 DMA Controller
// https://ww1.microchip.com/downloads/en/DeviceDoc/SAM_D5x_E5x_Family_Data_Sheet_DS60001507G.pdf
