package notifications

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// mintToken читает TokenBytes случайных байт и кодирует их в hex
func mintToken(src io.Reader) (string, error) {
	buf := make([]byte, domain.TokenBytes)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("%w: failed to read random bytes: %v", ErrInternal, err)
	}
	return hex.EncodeToString(buf), nil
}
