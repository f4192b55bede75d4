package randomness

import "time"

// Source names recorded on each round alongside the drawn value
const (
	SourceSlotHash = "slothash"
	SourceCrypto   = "crypto"
	SourceVRF      = "vrf"
	SourceFixed    = "fixed"
)

// DefaultSlotDuration is the length of one execution slot
const DefaultSlotDuration = 400 * time.Millisecond

// slotHashPreimageLen is i64 timestamp + u64 slot
const slotHashPreimageLen = 16

// vrfDomainTag prefixes every message signed by the VRF source
const vrfDomainTag = "jackpot-round"

// Error context
const (
	ErrContextDecodeKey       = "failed to decode VRF key"
	ErrContextSignSeed        = "failed to sign round seed"
	ErrContextReadEntropy     = "failed to read entropy"
	ErrContextUnknownSource   = "unknown randomness source"
	ErrContextVerifySignature = "VRF signature rejected"
	ErrContextVerifySlotHash  = "slot hash draw rejected"
)
