package legacy

import "fmt"

// Kind identifies a component type in a legacy save.
type Kind uint16

const (
	KindError Kind = iota
	KindOff
	KindOn
	KindBuffer
	KindNot
	KindAnd
	KindAnd3
	KindNand
	KindOr
	KindOr3
	KindNor
	KindXor
	KindXnor
	KindCounter
	KindVirtualCounter
	KindQwordCounter
	KindVirtualQwordCounter
	KindRam
	KindVirtualRam
	KindQwordRam
	KindVirtualQwordRam
	KindStack
	KindVirtualStack
	KindRegister
	KindVirtualRegister
	KindRegisterRed
	KindVirtualRegisterRed
	KindRegisterRedPlus
	KindVirtualRegisterRedPlus
	KindQwordRegister
	KindVirtualQwordRegister
	KindByteSwitch
	KindMux
	KindDemux
	KindBiggerDemux
	KindByteConstant
	KindByteNot
	KindByteOr
	KindByteAnd
	KindByteXor
	KindByteEqual
	KindByteLessU
	KindByteLessI
	KindByteNeg
	KindByteAdd2
	KindByteMul2
	KindByteSplitter
	KindByteMaker
	KindQwordSplitter
	KindQwordMaker
	KindFullAdder
	KindBitMemory
	KindVirtualBitMemory
	KindSRLatch
	KindRandom
	KindClock
	KindWaveformGenerator
	KindHttpClient
	KindAsciiScreen
	KindKeyboard
	KindFileInput
	KindHalt
	KindCircuitCluster
	KindScreen
	KindProgram1
	KindProgram1Red
	KindProgram2
	KindProgram3
	KindProgram4
	KindLevelGate
	KindInput1
	KindInput2
	KindInput3
	KindInput4
	KindInput1BConditions
	KindInput1B
	KindInputQword
	KindInput1BCode
	KindInput1_1B
	KindOutput1
	KindOutput1Sum
	KindOutput1Car
	KindOutput1Aval
	KindOutput1Bval
	KindOutput2
	KindOutput3
	KindOutput4
	KindOutput1B
	KindOutputQword
	KindOutput1_1B
	KindOutputCounter
	KindInputOutput
	KindCustom
	KindVirtualCustom
	KindQwordProgram
	KindDelayBuffer
)

var kindNames = [...]string{
	KindError:                  "Error",
	KindOff:                    "Off",
	KindOn:                     "On",
	KindBuffer:                 "Buffer",
	KindNot:                    "Not",
	KindAnd:                    "And",
	KindAnd3:                   "And3",
	KindNand:                   "Nand",
	KindOr:                     "Or",
	KindOr3:                    "Or3",
	KindNor:                    "Nor",
	KindXor:                    "Xor",
	KindXnor:                   "Xnor",
	KindCounter:                "Counter",
	KindVirtualCounter:         "VirtualCounter",
	KindQwordCounter:           "QwordCounter",
	KindVirtualQwordCounter:    "VirtualQwordCounter",
	KindRam:                    "Ram",
	KindVirtualRam:             "VirtualRam",
	KindQwordRam:               "QwordRam",
	KindVirtualQwordRam:        "VirtualQwordRam",
	KindStack:                  "Stack",
	KindVirtualStack:           "VirtualStack",
	KindRegister:               "Register",
	KindVirtualRegister:        "VirtualRegister",
	KindRegisterRed:            "RegisterRed",
	KindVirtualRegisterRed:     "VirtualRegisterRed",
	KindRegisterRedPlus:        "RegisterRedPlus",
	KindVirtualRegisterRedPlus: "VirtualRegisterRedPlus",
	KindQwordRegister:          "QwordRegister",
	KindVirtualQwordRegister:   "VirtualQwordRegister",
	KindByteSwitch:             "ByteSwitch",
	KindMux:                    "Mux",
	KindDemux:                  "Demux",
	KindBiggerDemux:            "BiggerDemux",
	KindByteConstant:           "ByteConstant",
	KindByteNot:                "ByteNot",
	KindByteOr:                 "ByteOr",
	KindByteAnd:                "ByteAnd",
	KindByteXor:                "ByteXor",
	KindByteEqual:              "ByteEqual",
	KindByteLessU:              "ByteLessU",
	KindByteLessI:              "ByteLessI",
	KindByteNeg:                "ByteNeg",
	KindByteAdd2:               "ByteAdd2",
	KindByteMul2:               "ByteMul2",
	KindByteSplitter:           "ByteSplitter",
	KindByteMaker:              "ByteMaker",
	KindQwordSplitter:          "QwordSplitter",
	KindQwordMaker:             "QwordMaker",
	KindFullAdder:              "FullAdder",
	KindBitMemory:              "BitMemory",
	KindVirtualBitMemory:       "VirtualBitMemory",
	KindSRLatch:                "SRLatch",
	KindRandom:                 "Random",
	KindClock:                  "Clock",
	KindWaveformGenerator:      "WaveformGenerator",
	KindHttpClient:             "HttpClient",
	KindAsciiScreen:            "AsciiScreen",
	KindKeyboard:               "Keyboard",
	KindFileInput:              "FileInput",
	KindHalt:                   "Halt",
	KindCircuitCluster:         "CircuitCluster",
	KindScreen:                 "Screen",
	KindProgram1:               "Program1",
	KindProgram1Red:            "Program1Red",
	KindProgram2:               "Program2",
	KindProgram3:               "Program3",
	KindProgram4:               "Program4",
	KindLevelGate:              "LevelGate",
	KindInput1:                 "Input1",
	KindInput2:                 "Input2",
	KindInput3:                 "Input3",
	KindInput4:                 "Input4",
	KindInput1BConditions:      "Input1BConditions",
	KindInput1B:                "Input1B",
	KindInputQword:             "InputQword",
	KindInput1BCode:            "Input1BCode",
	KindInput1_1B:              "Input1_1B",
	KindOutput1:                "Output1",
	KindOutput1Sum:             "Output1Sum",
	KindOutput1Car:             "Output1Car",
	KindOutput1Aval:            "Output1Aval",
	KindOutput1Bval:            "Output1Bval",
	KindOutput2:                "Output2",
	KindOutput3:                "Output3",
	KindOutput4:                "Output4",
	KindOutput1B:               "Output1B",
	KindOutputQword:            "OutputQword",
	KindOutput1_1B:             "Output1_1B",
	KindOutputCounter:          "OutputCounter",
	KindInputOutput:            "InputOutput",
	KindCustom:                 "Custom",
	KindVirtualCustom:          "VirtualCustom",
	KindQwordProgram:           "QwordProgram",
	KindDelayBuffer:            "DelayBuffer",
}

// Known reports whether k is part of this format's kind table.
func (k Kind) Known() bool { return int(k) < len(kindNames) }

func (k Kind) String() string {
	if k.Known() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
