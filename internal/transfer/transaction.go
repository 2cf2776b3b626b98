package transfer

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// BlockReference is the recent blockhash a transaction is anchored to.
// The network rejects transactions whose reference is older than its
// validity window, so a fresh one is fetched for every attempt.
type BlockReference struct {
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
}

// UnsignedTransaction is a transaction with its instructions, block reference
// and fee payer fixed, and no signatures. It is immutable: signing produces a
// separate SignedTransaction through Attach.
type UnsignedTransaction struct {
	tx        *solana.Transaction
	reference BlockReference
	feePayer  solana.PublicKey
}

// newUnsignedTransaction compiles the instructions into a legacy message paid by feePayer.
func newUnsignedTransaction(instructions []solana.Instruction, reference BlockReference, feePayer solana.PublicKey) (UnsignedTransaction, error) {
	tx, err := solana.NewTransaction(instructions, reference.Blockhash, solana.TransactionPayer(feePayer))
	if err != nil {
		return UnsignedTransaction{}, fmt.Errorf("compile transaction: %w", err)
	}

	return UnsignedTransaction{
		tx:        tx,
		reference: reference,
		feePayer:  feePayer,
	}, nil
}

// IsZero reports whether u was never built.
func (u UnsignedTransaction) IsZero() bool {
	return u.tx == nil
}

// FeePayer returns the account charged with the network fee. It is the only signer.
func (u UnsignedTransaction) FeePayer() solana.PublicKey {
	return u.feePayer
}

// BlockReference returns the block reference the transaction is anchored to.
func (u UnsignedTransaction) BlockReference() BlockReference {
	return u.reference
}

// AccountKeys returns a copy of the message's ordered account list.
func (u UnsignedTransaction) AccountKeys() solana.PublicKeySlice {
	return append(solana.PublicKeySlice(nil), u.tx.Message.AccountKeys...)
}

// Signers returns the accounts whose signatures the network requires, in slot order.
func (u UnsignedTransaction) Signers() solana.PublicKeySlice {
	return u.tx.Message.Signers()
}

// Instructions returns a deep copy of the compiled instructions.
func (u UnsignedTransaction) Instructions() []solana.CompiledInstruction {
	out := make([]solana.CompiledInstruction, len(u.tx.Message.Instructions))
	for i, inst := range u.tx.Message.Instructions {
		out[i] = solana.CompiledInstruction{
			ProgramIDIndex: inst.ProgramIDIndex,
			Accounts:       append([]uint16(nil), inst.Accounts...),
			Data:           append(solana.Base58(nil), inst.Data...),
		}
	}
	return out
}

// Message returns the signable message: the canonical serialization of the
// transaction without its signature slots. These are exactly the bytes the
// fee payer signs and the bytes embedded after the signatures on submission.
func (u UnsignedTransaction) Message() ([]byte, error) {
	return u.tx.Message.MarshalBinary()
}

// Attach binds sig to the fee payer and returns the signed transaction.
//
// The signature is verified against the signable message before it is
// accepted, so a SignedTransaction always carries exactly the signatures its
// message declares, each one valid.
func (u UnsignedTransaction) Attach(sig solana.Signature) (SignedTransaction, error) {
	signed := &solana.Transaction{
		Signatures: []solana.Signature{sig},
		Message:    u.tx.Message,
	}

	if err := signed.VerifySignatures(); err != nil {
		return SignedTransaction{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return SignedTransaction{
		tx:       signed,
		feePayer: u.feePayer,
	}, nil
}

// SignedTransaction is an UnsignedTransaction with its single fee-payer signature attached.
type SignedTransaction struct {
	tx       *solana.Transaction
	feePayer solana.PublicKey
}

// Signature returns the fee payer's signature. On Solana it is also the
// transaction identifier.
func (s SignedTransaction) Signature() solana.Signature {
	return s.tx.Signatures[0]
}

// FeePayer returns the account bound to the signature.
func (s SignedTransaction) FeePayer() solana.PublicKey {
	return s.feePayer
}

// Bytes serializes the transaction in the network's wire format:
// compact signature array followed by the signable message.
func (s SignedTransaction) Bytes() ([]byte, error) {
	return s.tx.MarshalBinary()
}
