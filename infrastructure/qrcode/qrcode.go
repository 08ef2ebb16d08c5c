package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Generator produces QR codes for campaign share links.
type Generator struct {
	baseURL string
}

// NewGenerator creates a new QR code generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: baseURL,
	}
}

// CampaignLink returns the public share link for a campaign.
func (g *Generator) CampaignLink(campaignID uint) string {
	return fmt.Sprintf("%s/campaigns/%d", g.baseURL, campaignID)
}

// Generate renders the campaign share link as a PNG QR code.
func (g *Generator) Generate(campaignID uint, size int) ([]byte, error) {
	png, err := qrcode.Encode(g.CampaignLink(campaignID), qrcode.Medium, size)
	if err != nil {
		return nil, err
	}

	return png, nil
}
