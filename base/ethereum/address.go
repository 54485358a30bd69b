package ethereum

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// DeploymentAddress derives the lower-cased address a contract deployed by deployer with nonce would get
func DeploymentAddress(deployer string, nonce uint64) string {
	return strings.ToLower(crypto.CreateAddress(common.HexToAddress(deployer), nonce).Hex())
}
