package contract

// Reflection-free JSON codecs for the hot state records, built on the
// tinyjson lexer/writer. Maintained by hand so the wasm build does not need
// the code generator; shapes follow what tinyjson emits for these structs.

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"passbooth_dao/sdk"
)

// MarshalTinyJSON supports tinyjson.Marshaler.
func (v FundingCycle) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(v.ID)
	w.RawString(`,"prj":`)
	w.Uint64(v.ProjectID)
	w.RawString(`,"prev":`)
	w.Uint64(v.PreviousID)
	w.RawString(`,"start":`)
	w.Int64(v.Start)
	w.RawString(`,"dur":`)
	w.Uint64(v.Duration)
	w.RawString(`,"limit":`)
	w.Uint64(v.CycleLimit)
	w.RawString(`,"target":`)
	w.Int64(int64(v.Target))
	w.RawString(`,"lock":`)
	w.Uint64(v.LockRate)
	w.RawString(`,"dep":`)
	w.Int64(int64(v.Deposited))
	w.RawString(`,"lkd":`)
	w.Int64(int64(v.Locked))
	w.RawString(`,"tap":`)
	w.Int64(int64(v.Tappable))
	w.RawString(`,"ulk":`)
	w.Int64(int64(v.Unlocked))
	w.RawString(`,"max":`)
	w.Bool(v.ReachedMaxLock)
	w.RawString(`,"paused":`)
	w.Bool(v.Paused)
	w.RawByte('}')
}

// UnmarshalTinyJSON supports tinyjson.Unmarshaler.
func (v *FundingCycle) UnmarshalTinyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "id":
			v.ID = l.Uint64()
		case "prj":
			v.ProjectID = l.Uint64()
		case "prev":
			v.PreviousID = l.Uint64()
		case "start":
			v.Start = l.Int64()
		case "dur":
			v.Duration = l.Uint64()
		case "limit":
			v.CycleLimit = l.Uint64()
		case "target":
			v.Target = Amount(l.Int64())
		case "lock":
			v.LockRate = l.Uint64()
		case "dep":
			v.Deposited = Amount(l.Int64())
		case "lkd":
			v.Locked = Amount(l.Int64())
		case "tap":
			v.Tappable = Amount(l.Int64())
		case "ulk":
			v.Unlocked = Amount(l.Int64())
		case "max":
			v.ReachedMaxLock = l.Bool()
		case "paused":
			v.Paused = l.Bool()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

// MarshalTinyJSON supports tinyjson.Marshaler.
func (v Tier) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"fee":`)
	w.Int64(int64(v.Fee))
	w.RawString(`,"cap":`)
	w.Uint64(v.Capacity)
	w.RawString(`,"rem":`)
	w.Uint64(v.Remaining)
	w.RawString(`,"mul":`)
	w.Uint64(v.Multiplier)
	w.RawByte('}')
}

// UnmarshalTinyJSON supports tinyjson.Unmarshaler.
func (v *Tier) UnmarshalTinyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "fee":
			v.Fee = Amount(l.Int64())
		case "cap":
			v.Capacity = l.Uint64()
		case "rem":
			v.Remaining = l.Uint64()
		case "mul":
			v.Multiplier = l.Uint64()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

// MarshalTinyJSON supports tinyjson.Marshaler.
func (v AuctionedPass) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"price":`)
	w.Int64(int64(v.SalePrice))
	w.RawString(`,"w":`)
	w.Uint64(v.Weight)
	w.RawString(`,"sale":`)
	w.Uint64(v.SaleAmount)
	w.RawString(`,"comm":`)
	w.Uint64(v.CommunityAmount)
	w.RawString(`,"rsvd":`)
	w.Uint64(v.ReservedAmount)
	w.RawString(`,"voucher":`)
	w.String(v.CommunityVoucher.String())
	w.RawByte('}')
}

// UnmarshalTinyJSON supports tinyjson.Unmarshaler.
func (v *AuctionedPass) UnmarshalTinyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "price":
			v.SalePrice = Amount(l.Int64())
		case "w":
			v.Weight = l.Uint64()
		case "sale":
			v.SaleAmount = l.Uint64()
		case "comm":
			v.CommunityAmount = l.Uint64()
		case "rsvd":
			v.ReservedAmount = l.Uint64()
		case "voucher":
			v.CommunityVoucher = sdk.Address(l.String())
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

// stakeEntryList wraps the per-user entry slice so it satisfies the tinyjson
// interfaces without reflection.
type stakeEntryList struct {
	Entries []StakeEntry
}

// MarshalTinyJSON supports tinyjson.Marshaler.
func (v stakeEntryList) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, e := range v.Entries {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawByte('{')
		w.RawString(`"tier":`)
		w.Uint64(e.Tier)
		w.RawString(`,"amt":`)
		w.Uint64(e.Amount)
		w.RawString(`,"w":`)
		w.Uint64(e.Weight)
		w.RawByte('}')
	}
	w.RawByte(']')
}

// UnmarshalTinyJSON supports tinyjson.Unmarshaler.
func (v *stakeEntryList) UnmarshalTinyJSON(l *jlexer.Lexer) {
	l.Delim('[')
	for !l.IsDelim(']') {
		var e StakeEntry
		l.Delim('{')
		for !l.IsDelim('}') {
			key := l.UnsafeFieldName(false)
			l.WantColon()
			switch key {
			case "tier":
				e.Tier = l.Uint64()
			case "amt":
				e.Amount = l.Uint64()
			case "w":
				e.Weight = l.Uint64()
			default:
				l.SkipRecursive()
			}
			l.WantComma()
		}
		l.Delim('}')
		v.Entries = append(v.Entries, e)
		l.WantComma()
	}
	l.Delim(']')
}

// encodeRecord marshals any tinyjson record and aborts on writer errors, which
// only happen on broken in-memory state.
func encodeRecord(v tinyjson.Marshaler, what string) string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to encode " + what + ": " + err.Error())
	}
	return string(b)
}

// decodeRecord is the read-side twin; a decode failure means corrupted state
// and is fatal to the call.
func decodeRecord(data string, v tinyjson.Unmarshaler, what string) {
	if err := tinyjson.Unmarshal([]byte(data), v); err != nil {
		sdk.Abort("failed to decode " + what + ": " + err.Error())
	}
}
