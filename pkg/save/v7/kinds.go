package v7

import "fmt"

// Kind identifies a component type in a version 7 save.
type Kind uint16

const (
	KindNone Kind = iota
	KindOff
	KindOn
	KindNotBit
	KindAndBit
	KindAnd3Bit
	KindNandBit
	KindOrBit
	KindOr3Bit
	KindNorBit
	KindXorBit
	KindXnorBit
	KindSwitchBit
	KindDelayLineBit
	KindRegisterBit
	KindFullAdder
	KindMakerBit8
	KindSplitterBit8
	KindNotWord
	KindOrWord
	KindAndWord
	KindNandWord
	KindNorWord
	KindXorWord
	KindXnorWord
	KindSwitchWord
	KindEqual
	KindLessU
	KindLessS
	KindNeg
	KindAdd
	KindMul
	KindDiv
	KindLsl
	KindLsr
	KindRol
	KindRor
	KindAsr
	KindCounter
	KindRegisterWord
	KindImmRegisterWord
	KindImmDelayLineBit
	KindMux
	KindDecoder1
	KindDecoder2
	KindDecoder3
	KindConstant
	KindSplitterWord2
	KindMakerWord2
	KindFrontPanel
	KindAssembler
	KindSsd
	KindRam
	KindRamLatency
	KindRamFast
	KindDelayLineWord
	KindRamDualLoad
	KindFileLoader
	KindCcLevelOutput
	KindLevelGate
	KindLevelInput1
	KindLevelInputWord
	KindLevelInputSwitched
	KindLevelInput2Pin
	KindLevelInput3Pin
	KindLevelInput4Pin
	KindLevelInputCustom
	KindLevelInputArch
	KindLevelOutput1
	KindLevelOutputWord
	KindLevelOutputSwitched
	KindLevelOutput1Sum
	KindLevelOutput1Car
	KindLevelOutput2Pin
	KindLevelOutput3Pin
	KindLevelOutput4Pin
	KindLevelOutputArch
	KindLevelOutputCounter
	KindCustom
	KindCcInput
	KindCcInputBuffer
	KindCcOutput
	KindProbeMemoryBit
	KindProbeMemoryWord
	KindProbeWireBit
	KindProbeWireWord
	KindConfigDelay
	KindHalt
	KindConsole
	KindSegmentDisplay
	KindStaticValue
	KindPixelScreen
	KindTime
	KindKeyboard
	KindStaticEval
	KindVerilogInput
	KindVerilogOutput
	KindMakerWord4
	KindMakerWord8
	KindSplitterWord4
	KindSplitterWord8
	KindStaticIndexer
	KindImmProbeMemoryBit
	KindImmDelayLineWord
	KindInc
	KindCcLevelInputCustom
	KindCcLevelInput
	KindImmRegisterBit
	KindMod
	KindSplitterBit2
	KindSplitterBit4
	KindMakerBit2
	KindMakerBit4
	KindImmProbeMemoryWord
	KindConcatenator2
	KindConcatenator4
	KindConcatenator8
	KindStaticIndexerConfig
	KindRom
)

var kindNames = [...]string{
	KindNone:                "None",
	KindOff:                 "Off",
	KindOn:                  "On",
	KindNotBit:              "NotBit",
	KindAndBit:              "AndBit",
	KindAnd3Bit:             "And3Bit",
	KindNandBit:             "NandBit",
	KindOrBit:               "OrBit",
	KindOr3Bit:              "Or3Bit",
	KindNorBit:              "NorBit",
	KindXorBit:              "XorBit",
	KindXnorBit:             "XnorBit",
	KindSwitchBit:           "SwitchBit",
	KindDelayLineBit:        "DelayLineBit",
	KindRegisterBit:         "RegisterBit",
	KindFullAdder:           "FullAdder",
	KindMakerBit8:           "MakerBit8",
	KindSplitterBit8:        "SplitterBit8",
	KindNotWord:             "NotWord",
	KindOrWord:              "OrWord",
	KindAndWord:             "AndWord",
	KindNandWord:            "NandWord",
	KindNorWord:             "NorWord",
	KindXorWord:             "XorWord",
	KindXnorWord:            "XnorWord",
	KindSwitchWord:          "SwitchWord",
	KindEqual:               "Equal",
	KindLessU:               "LessU",
	KindLessS:               "LessS",
	KindNeg:                 "Neg",
	KindAdd:                 "Add",
	KindMul:                 "Mul",
	KindDiv:                 "Div",
	KindLsl:                 "Lsl",
	KindLsr:                 "Lsr",
	KindRol:                 "Rol",
	KindRor:                 "Ror",
	KindAsr:                 "Asr",
	KindCounter:             "Counter",
	KindRegisterWord:        "RegisterWord",
	KindImmRegisterWord:     "ImmRegisterWord",
	KindImmDelayLineBit:     "ImmDelayLineBit",
	KindMux:                 "Mux",
	KindDecoder1:            "Decoder1",
	KindDecoder2:            "Decoder2",
	KindDecoder3:            "Decoder3",
	KindConstant:            "Constant",
	KindSplitterWord2:       "SplitterWord2",
	KindMakerWord2:          "MakerWord2",
	KindFrontPanel:          "FrontPanel",
	KindAssembler:           "Assembler",
	KindSsd:                 "Ssd",
	KindRam:                 "Ram",
	KindRamLatency:          "RamLatency",
	KindRamFast:             "RamFast",
	KindDelayLineWord:       "DelayLineWord",
	KindRamDualLoad:         "RamDualLoad",
	KindFileLoader:          "FileLoader",
	KindCcLevelOutput:       "CcLevelOutput",
	KindLevelGate:           "LevelGate",
	KindLevelInput1:         "LevelInput1",
	KindLevelInputWord:      "LevelInputWord",
	KindLevelInputSwitched:  "LevelInputSwitched",
	KindLevelInput2Pin:      "LevelInput2Pin",
	KindLevelInput3Pin:      "LevelInput3Pin",
	KindLevelInput4Pin:      "LevelInput4Pin",
	KindLevelInputCustom:    "LevelInputCustom",
	KindLevelInputArch:      "LevelInputArch",
	KindLevelOutput1:        "LevelOutput1",
	KindLevelOutputWord:     "LevelOutputWord",
	KindLevelOutputSwitched: "LevelOutputSwitched",
	KindLevelOutput1Sum:     "LevelOutput1Sum",
	KindLevelOutput1Car:     "LevelOutput1Car",
	KindLevelOutput2Pin:     "LevelOutput2Pin",
	KindLevelOutput3Pin:     "LevelOutput3Pin",
	KindLevelOutput4Pin:     "LevelOutput4Pin",
	KindLevelOutputArch:     "LevelOutputArch",
	KindLevelOutputCounter:  "LevelOutputCounter",
	KindCustom:              "Custom",
	KindCcInput:             "CcInput",
	KindCcInputBuffer:       "CcInputBuffer",
	KindCcOutput:            "CcOutput",
	KindProbeMemoryBit:      "ProbeMemoryBit",
	KindProbeMemoryWord:     "ProbeMemoryWord",
	KindProbeWireBit:        "ProbeWireBit",
	KindProbeWireWord:       "ProbeWireWord",
	KindConfigDelay:         "ConfigDelay",
	KindHalt:                "Halt",
	KindConsole:             "Console",
	KindSegmentDisplay:      "SegmentDisplay",
	KindStaticValue:         "StaticValue",
	KindPixelScreen:         "PixelScreen",
	KindTime:                "Time",
	KindKeyboard:            "Keyboard",
	KindStaticEval:          "StaticEval",
	KindVerilogInput:        "VerilogInput",
	KindVerilogOutput:       "VerilogOutput",
	KindMakerWord4:          "MakerWord4",
	KindMakerWord8:          "MakerWord8",
	KindSplitterWord4:       "SplitterWord4",
	KindSplitterWord8:       "SplitterWord8",
	KindStaticIndexer:       "StaticIndexer",
	KindImmProbeMemoryBit:   "ImmProbeMemoryBit",
	KindImmDelayLineWord:    "ImmDelayLineWord",
	KindInc:                 "Inc",
	KindCcLevelInputCustom:  "CcLevelInputCustom",
	KindCcLevelInput:        "CcLevelInput",
	KindImmRegisterBit:      "ImmRegisterBit",
	KindMod:                 "Mod",
	KindSplitterBit2:        "SplitterBit2",
	KindSplitterBit4:        "SplitterBit4",
	KindMakerBit2:           "MakerBit2",
	KindMakerBit4:           "MakerBit4",
	KindImmProbeMemoryWord:  "ImmProbeMemoryWord",
	KindConcatenator2:       "Concatenator2",
	KindConcatenator4:       "Concatenator4",
	KindConcatenator8:       "Concatenator8",
	KindStaticIndexerConfig: "StaticIndexerConfig",
	KindRom:                 "Rom",
}

// Known reports whether k is part of this format's kind table.
func (k Kind) Known() bool { return int(k) < len(kindNames) }

func (k Kind) String() string {
	if k.Known() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
