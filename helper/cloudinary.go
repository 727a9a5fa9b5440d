package helper

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gosimple/slug"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

func ExtractPublicID(url string) string {
	// URL dạng: https://res.cloudinary.com/<cloud-name>/image/upload/<folder>/<public-id>.<format>
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

// LogoPublicID builds a stable slug-based public id for an airline logo
func LogoPublicID(airlineCode, airlineName string) string {
	return strings.ToLower(airlineCode) + "-" + slug.Make(airlineName)
}
