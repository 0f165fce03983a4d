package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var assetAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

func NormalizeAssetAddress(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func ValidateAssetSymbol(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: asset_symbol is required", ErrInvalidInput)
	}
	return nil
}

func ValidateAssetAddress(v string) error {
	if !assetAddressPattern.MatchString(strings.TrimSpace(v)) {
		return fmt.Errorf("%w: asset_address must be a 0x-prefixed 40-hex-char address", ErrInvalidInput)
	}
	return nil
}

func ValidateChainID(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: chain_id must be a positive integer", ErrInvalidInput)
	}
	return nil
}

func ParseAssetSource(raw string) (AssetSource, error) {
	switch AssetSource(raw) {
	case SourcePartner:
		return SourcePartner, nil
	case SourceAnalyst:
		return SourceAnalyst, nil
	default:
		return "", fmt.Errorf("%w: source must be one of partner, analyst", ErrInvalidInput)
	}
}

func ParseBuildStatus(raw string) (BuildStatus, error) {
	switch BuildStatus(raw) {
	case BuildStatusNotStarted, BuildStatusInProgress, BuildStatusDone:
		return BuildStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: status must be one of not_started, in_progress, done", ErrInvalidInput)
	}
}
