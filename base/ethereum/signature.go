package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// RecoverMsgSigner returns the lower-cased address that personal-signed message
func RecoverMsgSigner(message []byte, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", err
	}
	signer, err := ecRecover(accounts.TextHash(message), sig)
	if err != nil {
		return "", err
	}
	return strings.ToLower(signer.Hex()), nil
}

// ValidateMsgSignature reports whether signer personal-signed message
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	recovered, err := RecoverMsgSigner(message, signature)
	if err != nil {
		return false, err
	}
	return recovered == strings.ToLower(common.HexToAddress(signer).Hex()), nil
}

// ecRecover accepts v as 0/1 or 27/28, wallets disagree on which one eth_sign returns
func ecRecover(hash []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes long", crypto.SignatureLength)
	}

	rsv := make([]byte, len(sig))
	copy(rsv, sig)
	v := rsv[crypto.RecoveryIDOffset]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return common.Address{}, fmt.Errorf("invalid signature recovery id %d", rsv[crypto.RecoveryIDOffset])
	}
	rsv[crypto.RecoveryIDOffset] = v

	pub, err := crypto.SigToPub(hash, rsv)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
