package render

// Palette
var (
	RgbBackground     = RGB{25, 25, 40}
	RgbMenuBackground = RGB{18, 18, 30}
	RgbIntroBg        = RGB{0, 0, 0}

	RgbEnemy       = RGB{178, 34, 34}  // Firebrick
	RgbAlly        = RGB{240, 230, 140} // Khaki
	RgbAllyRescued = RGB{169, 169, 169} // Grey
	RgbPickup      = RGB{255, 20, 147}  // Deep pink
	RgbShield      = RGB{255, 255, 255}
	RgbPlayerDown  = RGB{90, 90, 90}

	RgbText     = RGB{255, 255, 255}
	RgbControls = RGB{200, 200, 200}
	RgbGameOver = RGB{255, 180, 180}
	RgbP1Label  = RGB{200, 200, 255}
	RgbP2Label  = RGB{200, 255, 200}
)

// labelColor returns the HUD name colour for player i
func labelColor(i int) RGB {
	if i == 0 {
		return RgbP1Label
	}
	return RgbP2Label
}
