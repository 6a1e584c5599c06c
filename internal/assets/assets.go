// Package assets selects presentation images from show asset lists.
package assets

import (
	"strings"

	"callboard/internal/models"
	"callboard/internal/schema"
)

// Asset types considered for the primary image, in preference order.
const (
	typePoster    = "poster"
	typeFlyer     = "flyer"
	typeProgramme = "programme"
)

// PrimaryImage picks the image used in list views. An asset flagged
// display_image wins outright, then the first poster, flyer, or
// programme image in that order. Empty when nothing suits.
func PrimaryImage(list []models.Asset) string {
	var images []models.Asset
	for _, asset := range list {
		if asset.Image != "" {
			images = append(images, asset)
		}
	}
	for _, asset := range images {
		if asset.DisplayImage {
			return asset.Image
		}
	}
	for _, wanted := range []string{typePoster, typeFlyer, typeProgramme} {
		for _, asset := range images {
			if strings.EqualFold(asset.Type, wanted) {
				return asset.Image
			}
		}
	}
	return ""
}

// Convert maps validated asset records to their output shapes.
func Convert(list []models.Asset) []schema.Asset {
	out := make([]schema.Asset, 0, len(list))
	for _, asset := range list {
		out = append(out, schema.Asset{
			Type:         asset.Type,
			Image:        asset.Image,
			Video:        asset.Video,
			Filename:     asset.Filename,
			Title:        asset.Title,
			Page:         asset.Page,
			DisplayImage: asset.DisplayImage,
		})
	}
	return out
}
