package welcome

import (
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

const bannerArt = `
███████╗ ██████╗ ██████╗ ███╗   ██╗
██╔════╝██╔════╝██╔═══██╗████╗  ██║
█████╗  ██║     ██║   ██║██╔██╗ ██║
██╔══╝  ██║     ██║   ██║██║╚██╗██║
███████╗╚██████╗╚██████╔╝██║ ╚████║
╚══════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝`

const bannerCompact = "E C O N  1"

// RenderBanner returns the ECON banner in the title style.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(th theme.Theme, width int) string {
	if width < 40 {
		return th.Title.Render(bannerCompact)
	}
	return th.Title.Render(bannerArt)
}
