package ethereum

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	messageTemplate := "this is signature message template %s"
	privateKey, publicKey, err := GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	nonce := "123456"
	message := []byte(fmt.Sprintf(messageTemplate, nonce))
	hash := accounts.TextHash(message)
	signature, err := crypto.Sign(hash, privateKey)
	assert.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// incorrect nonce
	res2, err := ValidateMsgSignature([]byte("654321"), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res2)

	// incorrect signer
	_, pubKey, err := GenerateKey()
	assert.NoError(t, err)
	res3, err := ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*pubKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res3)
}

func TestRecoverMsgSigner(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	message := []byte("sign in with nonce 42")
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	req.NoError(err)

	want := strings.ToLower(crypto.PubkeyToAddress(*publicKey).Hex())
	signer, err := RecoverMsgSigner(message, hexutil.Encode(signature))
	req.NoError(err)
	req.Equal(want, signer)

	// wallets returning v as 27/28
	signature[crypto.RecoveryIDOffset] += 27
	signer, err = RecoverMsgSigner(message, hexutil.Encode(signature))
	req.NoError(err)
	req.Equal(want, signer)

	signature[crypto.RecoveryIDOffset] = 30
	_, err = RecoverMsgSigner(message, hexutil.Encode(signature))
	req.Error(err)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	_, err := ValidateMsgSignature([]byte("msg"), "not-hex", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b")
	require.Error(t, err)

	_, err = ValidateMsgSignature([]byte("msg"), "0x0102", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b")
	require.Error(t, err)
}

func TestDeploymentAddress(t *testing.T) {
	deployer := "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0"

	assert.Equal(t, "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d", DeploymentAddress(deployer, 0))
	assert.Equal(t, "0x343c43a37d37dff08ae8c4a11544c718abb4fcf8", DeploymentAddress(deployer, 1))
}
