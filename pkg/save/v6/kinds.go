package v6

import "fmt"

// Kind identifies a component type in a version 6 save.
type Kind uint16

const (
	KindError Kind = iota
	KindOff
	KindOn
	KindBuffer1
	KindNot
	KindAnd
	KindAnd3
	KindNand
	KindOr
	KindOr3
	KindNor
	KindXor
	KindXnor
	KindCounter8
	KindVirtualCounter8
	KindCounter64
	KindVirtualCounter64
	KindRam8
	KindVirtualRam8
	KindDeleted0
	KindDeleted1
	KindDeleted17
	KindDeleted18
	KindRegister8
	KindVirtualRegister8
	KindRegister8red
	KindVirtualRegister8red
	KindRegister8redPlus
	KindVirtualRegister8redPlus
	KindRegister64
	KindVirtualRegister64
	KindSwitch8
	KindMux8
	KindComDecoder1
	KindComDecoder3
	KindConstant8
	KindNot8
	KindOr8
	KindAnd8
	KindXor8
	KindComEqual8
	KindDeleted2
	KindDeleted3
	KindNeg8
	KindAdd8
	KindMul8
	KindSplitter8
	KindMaker8
	KindSplitter64
	KindMaker64
	KindComFullAdder
	KindComBitMemory
	KindVirtualcomBitMemory
	KindDeleted10
	KindComDecoder2
	KindComTime
	KindNoteSound
	KindDeleted4
	KindDeleted5
	KindKeyboard
	KindComFileLoader
	KindHalt
	KindWireCluster
	KindLevelScreen
	KindProgram81
	KindProgram81red
	KindDeleted6
	KindDeleted7
	KindProgram84
	KindComLevelGate
	KindInput1
	KindComLevelInput2Pin
	KindComLevelInput3Pin
	KindComLevelInput4Pin
	KindLevelInputConditions
	KindInput8
	KindInput64
	KindLevelInputCode
	KindComLevelInputArch
	KindOutput1
	KindComLevelOutput1Sum
	KindComLevelOutput1Car
	KindDeleted8
	KindDeleted9
	KindComLevelOutput2Pin
	KindComLevelOutput3Pin
	KindComLevelOutput4Pin
	KindOutput8
	KindOutput64
	KindComLevelOutputArch
	KindComLevelOutputCounter
	KindDeleted11
	KindCustom
	KindVirtualCustom
	KindProgram
	KindDelayLine1
	KindVirtualDelayLine1
	KindConsole
	KindShl8
	KindShr8
	KindConstant64
	KindNot64
	KindOr64
	KindAnd64
	KindXor64
	KindNeg64
	KindAdd64
	KindMul64
	KindComEqual64
	KindComLessU64
	KindComLessS64
	KindShl64
	KindShr64
	KindMux64
	KindSwitch64
	KindComProbeMemoryBit
	KindComProbeMemoryWord
	KindAndOrLatch
	KindNandNandLatch
	KindNorNorLatch
	KindComLessU8
	KindComLessS8
	KindDotMatrixDisplay
	KindComSegmentDisplay
	KindInput16
	KindInput32
	KindOutput16
	KindOutput32
	KindDeleted12
	KindDeleted13
	KindDeleted14
	KindDeleted15
	KindDeleted16
	KindBuffer8
	KindBuffer16
	KindBuffer32
	KindBuffer64
	KindComProbeWireBit
	KindComProbeWireWord
	KindSwitch1
	KindOutput1z
	KindOutput8z
	KindOutput16z
	KindOutput32z
	KindOutput64z
	KindConstant16
	KindNot16
	KindOr16
	KindAnd16
	KindXor16
	KindNeg16
	KindAdd16
	KindMul16
	KindComEqual16
	KindComLessU16
	KindComLessS16
	KindShl16
	KindShr16
	KindMux16
	KindSwitch16
	KindSplitter16
	KindMaker16
	KindRegister16
	KindVirtualRegister16
	KindCounter16
	KindVirtualCounter16
	KindConstant32
	KindNot32
	KindOr32
	KindAnd32
	KindXor32
	KindNeg32
	KindAdd32
	KindMul32
	KindComEqual32
	KindComLessU32
	KindComLessS32
	KindShl32
	KindShr32
	KindMux32
	KindSwitch32
	KindSplitter32
	KindMaker32
	KindRegister32
	KindVirtualRegister32
	KindCounter32
	KindVirtualCounter32
	KindLevelOutput8z
	KindNand8
	KindNor8
	KindXnor8
	KindNand16
	KindNor16
	KindXnor16
	KindNand32
	KindNor32
	KindXnor32
	KindNand64
	KindNor64
	KindXnor64
	KindRam
	KindVirtualRam
	KindComRamLatency
	KindVirtualcomRamLatency
	KindComRamFast
	KindVirtualcomRamFast
	KindRom
	KindVirtualRom
	KindSolutionRom
	KindVirtualSolutionRom
	KindDelayLine8
	KindVirtualDelayLine8
	KindDelayLine16
	KindVirtualDelayLine16
	KindDelayLine32
	KindVirtualDelayLine32
	KindDelayLine64
	KindVirtualDelayLine64
	KindComRamDualLoad
	KindVirtualcomRamDualLoad
	KindHdd
	KindVirtualHdd
	KindNetwork
	KindRol8
	KindRol16
	KindRol32
	KindRol64
	KindRor8
	KindRor16
	KindRor32
	KindRor64
	KindIndexerBit
	KindIndexerByte
	KindDivMod8
	KindDivMod16
	KindDivMod32
	KindDivMod64
	KindSpriteDisplay
	KindComConfigDelay
	KindClock
	KindComLevelInput1
	KindLevelInput8
	KindComLevelOutput1
	KindLevelOutput8
	KindAshr8
	KindAshr16
	KindAshr32
	KindAshr64
	KindBidirectional1
	KindVirtualBidirectional1
	KindBidirectional8
	KindVirtualBidirectional8
	KindBidirectional16
	KindVirtualBidirectional16
	KindBidirectional32
	KindVirtualBidirectional32
	KindBidirectional64
	KindVirtualBidirectional64
)

var kindNames = [...]string{
	KindError:                   "Error",
	KindOff:                     "Off",
	KindOn:                      "On",
	KindBuffer1:                 "Buffer1",
	KindNot:                     "Not",
	KindAnd:                     "And",
	KindAnd3:                    "And3",
	KindNand:                    "Nand",
	KindOr:                      "Or",
	KindOr3:                     "Or3",
	KindNor:                     "Nor",
	KindXor:                     "Xor",
	KindXnor:                    "Xnor",
	KindCounter8:                "Counter8",
	KindVirtualCounter8:         "VirtualCounter8",
	KindCounter64:               "Counter64",
	KindVirtualCounter64:        "VirtualCounter64",
	KindRam8:                    "Ram8",
	KindVirtualRam8:             "VirtualRam8",
	KindDeleted0:                "Deleted0",
	KindDeleted1:                "Deleted1",
	KindDeleted17:               "Deleted17",
	KindDeleted18:               "Deleted18",
	KindRegister8:               "Register8",
	KindVirtualRegister8:        "VirtualRegister8",
	KindRegister8red:            "Register8red",
	KindVirtualRegister8red:     "VirtualRegister8red",
	KindRegister8redPlus:        "Register8redPlus",
	KindVirtualRegister8redPlus: "VirtualRegister8redPlus",
	KindRegister64:              "Register64",
	KindVirtualRegister64:       "VirtualRegister64",
	KindSwitch8:                 "Switch8",
	KindMux8:                    "Mux8",
	KindComDecoder1:             "ComDecoder1",
	KindComDecoder3:             "ComDecoder3",
	KindConstant8:               "Constant8",
	KindNot8:                    "Not8",
	KindOr8:                     "Or8",
	KindAnd8:                    "And8",
	KindXor8:                    "Xor8",
	KindComEqual8:               "ComEqual8",
	KindDeleted2:                "Deleted2",
	KindDeleted3:                "Deleted3",
	KindNeg8:                    "Neg8",
	KindAdd8:                    "Add8",
	KindMul8:                    "Mul8",
	KindSplitter8:               "Splitter8",
	KindMaker8:                  "Maker8",
	KindSplitter64:              "Splitter64",
	KindMaker64:                 "Maker64",
	KindComFullAdder:            "ComFullAdder",
	KindComBitMemory:            "ComBitMemory",
	KindVirtualcomBitMemory:     "VirtualcomBitMemory",
	KindDeleted10:               "Deleted10",
	KindComDecoder2:             "ComDecoder2",
	KindComTime:                 "ComTime",
	KindNoteSound:               "NoteSound",
	KindDeleted4:                "Deleted4",
	KindDeleted5:                "Deleted5",
	KindKeyboard:                "Keyboard",
	KindComFileLoader:           "ComFileLoader",
	KindHalt:                    "Halt",
	KindWireCluster:             "WireCluster",
	KindLevelScreen:             "LevelScreen",
	KindProgram81:               "Program81",
	KindProgram81red:            "Program81red",
	KindDeleted6:                "Deleted6",
	KindDeleted7:                "Deleted7",
	KindProgram84:               "Program84",
	KindComLevelGate:            "ComLevelGate",
	KindInput1:                  "Input1",
	KindComLevelInput2Pin:       "ComLevelInput2Pin",
	KindComLevelInput3Pin:       "ComLevelInput3Pin",
	KindComLevelInput4Pin:       "ComLevelInput4Pin",
	KindLevelInputConditions:    "LevelInputConditions",
	KindInput8:                  "Input8",
	KindInput64:                 "Input64",
	KindLevelInputCode:          "LevelInputCode",
	KindComLevelInputArch:       "ComLevelInputArch",
	KindOutput1:                 "Output1",
	KindComLevelOutput1Sum:      "ComLevelOutput1Sum",
	KindComLevelOutput1Car:      "ComLevelOutput1Car",
	KindDeleted8:                "Deleted8",
	KindDeleted9:                "Deleted9",
	KindComLevelOutput2Pin:      "ComLevelOutput2Pin",
	KindComLevelOutput3Pin:      "ComLevelOutput3Pin",
	KindComLevelOutput4Pin:      "ComLevelOutput4Pin",
	KindOutput8:                 "Output8",
	KindOutput64:                "Output64",
	KindComLevelOutputArch:      "ComLevelOutputArch",
	KindComLevelOutputCounter:   "ComLevelOutputCounter",
	KindDeleted11:               "Deleted11",
	KindCustom:                  "Custom",
	KindVirtualCustom:           "VirtualCustom",
	KindProgram:                 "Program",
	KindDelayLine1:              "DelayLine1",
	KindVirtualDelayLine1:       "VirtualDelayLine1",
	KindConsole:                 "Console",
	KindShl8:                    "Shl8",
	KindShr8:                    "Shr8",
	KindConstant64:              "Constant64",
	KindNot64:                   "Not64",
	KindOr64:                    "Or64",
	KindAnd64:                   "And64",
	KindXor64:                   "Xor64",
	KindNeg64:                   "Neg64",
	KindAdd64:                   "Add64",
	KindMul64:                   "Mul64",
	KindComEqual64:              "ComEqual64",
	KindComLessU64:              "ComLessU64",
	KindComLessS64:              "ComLessS64",
	KindShl64:                   "Shl64",
	KindShr64:                   "Shr64",
	KindMux64:                   "Mux64",
	KindSwitch64:                "Switch64",
	KindComProbeMemoryBit:       "ComProbeMemoryBit",
	KindComProbeMemoryWord:      "ComProbeMemoryWord",
	KindAndOrLatch:              "AndOrLatch",
	KindNandNandLatch:           "NandNandLatch",
	KindNorNorLatch:             "NorNorLatch",
	KindComLessU8:               "ComLessU8",
	KindComLessS8:               "ComLessS8",
	KindDotMatrixDisplay:        "DotMatrixDisplay",
	KindComSegmentDisplay:       "ComSegmentDisplay",
	KindInput16:                 "Input16",
	KindInput32:                 "Input32",
	KindOutput16:                "Output16",
	KindOutput32:                "Output32",
	KindDeleted12:               "Deleted12",
	KindDeleted13:               "Deleted13",
	KindDeleted14:               "Deleted14",
	KindDeleted15:               "Deleted15",
	KindDeleted16:               "Deleted16",
	KindBuffer8:                 "Buffer8",
	KindBuffer16:                "Buffer16",
	KindBuffer32:                "Buffer32",
	KindBuffer64:                "Buffer64",
	KindComProbeWireBit:         "ComProbeWireBit",
	KindComProbeWireWord:        "ComProbeWireWord",
	KindSwitch1:                 "Switch1",
	KindOutput1z:                "Output1z",
	KindOutput8z:                "Output8z",
	KindOutput16z:               "Output16z",
	KindOutput32z:               "Output32z",
	KindOutput64z:               "Output64z",
	KindConstant16:              "Constant16",
	KindNot16:                   "Not16",
	KindOr16:                    "Or16",
	KindAnd16:                   "And16",
	KindXor16:                   "Xor16",
	KindNeg16:                   "Neg16",
	KindAdd16:                   "Add16",
	KindMul16:                   "Mul16",
	KindComEqual16:              "ComEqual16",
	KindComLessU16:              "ComLessU16",
	KindComLessS16:              "ComLessS16",
	KindShl16:                   "Shl16",
	KindShr16:                   "Shr16",
	KindMux16:                   "Mux16",
	KindSwitch16:                "Switch16",
	KindSplitter16:              "Splitter16",
	KindMaker16:                 "Maker16",
	KindRegister16:              "Register16",
	KindVirtualRegister16:       "VirtualRegister16",
	KindCounter16:               "Counter16",
	KindVirtualCounter16:        "VirtualCounter16",
	KindConstant32:              "Constant32",
	KindNot32:                   "Not32",
	KindOr32:                    "Or32",
	KindAnd32:                   "And32",
	KindXor32:                   "Xor32",
	KindNeg32:                   "Neg32",
	KindAdd32:                   "Add32",
	KindMul32:                   "Mul32",
	KindComEqual32:              "ComEqual32",
	KindComLessU32:              "ComLessU32",
	KindComLessS32:              "ComLessS32",
	KindShl32:                   "Shl32",
	KindShr32:                   "Shr32",
	KindMux32:                   "Mux32",
	KindSwitch32:                "Switch32",
	KindSplitter32:              "Splitter32",
	KindMaker32:                 "Maker32",
	KindRegister32:              "Register32",
	KindVirtualRegister32:       "VirtualRegister32",
	KindCounter32:               "Counter32",
	KindVirtualCounter32:        "VirtualCounter32",
	KindLevelOutput8z:           "LevelOutput8z",
	KindNand8:                   "Nand8",
	KindNor8:                    "Nor8",
	KindXnor8:                   "Xnor8",
	KindNand16:                  "Nand16",
	KindNor16:                   "Nor16",
	KindXnor16:                  "Xnor16",
	KindNand32:                  "Nand32",
	KindNor32:                   "Nor32",
	KindXnor32:                  "Xnor32",
	KindNand64:                  "Nand64",
	KindNor64:                   "Nor64",
	KindXnor64:                  "Xnor64",
	KindRam:                     "Ram",
	KindVirtualRam:              "VirtualRam",
	KindComRamLatency:           "ComRamLatency",
	KindVirtualcomRamLatency:    "VirtualcomRamLatency",
	KindComRamFast:              "ComRamFast",
	KindVirtualcomRamFast:       "VirtualcomRamFast",
	KindRom:                     "Rom",
	KindVirtualRom:              "VirtualRom",
	KindSolutionRom:             "SolutionRom",
	KindVirtualSolutionRom:      "VirtualSolutionRom",
	KindDelayLine8:              "DelayLine8",
	KindVirtualDelayLine8:       "VirtualDelayLine8",
	KindDelayLine16:             "DelayLine16",
	KindVirtualDelayLine16:      "VirtualDelayLine16",
	KindDelayLine32:             "DelayLine32",
	KindVirtualDelayLine32:      "VirtualDelayLine32",
	KindDelayLine64:             "DelayLine64",
	KindVirtualDelayLine64:      "VirtualDelayLine64",
	KindComRamDualLoad:          "ComRamDualLoad",
	KindVirtualcomRamDualLoad:   "VirtualcomRamDualLoad",
	KindHdd:                     "Hdd",
	KindVirtualHdd:              "VirtualHdd",
	KindNetwork:                 "Network",
	KindRol8:                    "Rol8",
	KindRol16:                   "Rol16",
	KindRol32:                   "Rol32",
	KindRol64:                   "Rol64",
	KindRor8:                    "Ror8",
	KindRor16:                   "Ror16",
	KindRor32:                   "Ror32",
	KindRor64:                   "Ror64",
	KindIndexerBit:              "IndexerBit",
	KindIndexerByte:             "IndexerByte",
	KindDivMod8:                 "DivMod8",
	KindDivMod16:                "DivMod16",
	KindDivMod32:                "DivMod32",
	KindDivMod64:                "DivMod64",
	KindSpriteDisplay:           "SpriteDisplay",
	KindComConfigDelay:          "ComConfigDelay",
	KindClock:                   "Clock",
	KindComLevelInput1:          "ComLevelInput1",
	KindLevelInput8:             "LevelInput8",
	KindComLevelOutput1:         "ComLevelOutput1",
	KindLevelOutput8:            "LevelOutput8",
	KindAshr8:                   "Ashr8",
	KindAshr16:                  "Ashr16",
	KindAshr32:                  "Ashr32",
	KindAshr64:                  "Ashr64",
	KindBidirectional1:          "Bidirectional1",
	KindVirtualBidirectional1:   "VirtualBidirectional1",
	KindBidirectional8:          "Bidirectional8",
	KindVirtualBidirectional8:   "VirtualBidirectional8",
	KindBidirectional16:         "Bidirectional16",
	KindVirtualBidirectional16:  "VirtualBidirectional16",
	KindBidirectional32:         "Bidirectional32",
	KindVirtualBidirectional32:  "VirtualBidirectional32",
	KindBidirectional64:         "Bidirectional64",
	KindVirtualBidirectional64:  "VirtualBidirectional64",
}

// Known reports whether k is part of this format's kind table.
func (k Kind) Known() bool { return int(k) < len(kindNames) }

func (k Kind) String() string {
	if k.Known() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
