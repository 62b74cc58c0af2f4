package epd

// Panel command bytes.
const (
	cmdPanelSetting     byte = 0x00 // PSR; a single 0x0E data byte triggers a soft reset
	cmdPowerOff         byte = 0x02
	cmdPowerOn          byte = 0x04
	cmdDeepSleep        byte = 0x07
	cmdDataAccent       byte = 0x10 // DTM1
	cmdDisplayRefresh   byte = 0x12
	cmdDataInk          byte = 0x13 // DTM2
	cmdPartialWindow    byte = 0x90
	cmdPartialIn        byte = 0x91
	cmdPartialOut       byte = 0x92
	cmdActiveTemp       byte = 0xE0
	cmdInputTemperature byte = 0xE5
)

const (
	psrSoftReset  byte = 0x0E
	psrDefault0   byte = 0xCF
	psrDefault1   byte = 0x8D
	psrBlackWhite byte = 0x10 // PSR byte 0, bit 4: ignore the accent plane

	powerOnParam    byte = 0x00
	deepSleepCheck  byte = 0xA5
	temperature25C  byte = 0x19
	activeTempValue byte = 0x02

	partialScanInside byte = 0x01
)
