package pretty

import (
	"strings"

	"github.com/auditkit/ossaudit/common"
)

const alertArt = `
    _    _     _____ ____ _____
   / \  | |   | ____|  _ \_   _|
  / _ \ | |   |  _| | |_) || |
 / ___ \| |___| |___|  _ < | |
/_/   \_\_____|_____|_| \_\|_|
`

// DeniedAlert shouts about denied open source packages found in the
// build, listing the offending coordinates and where the full catalogs
// live. It is informational here; the verdict is decided elsewhere.
func DeniedAlert(denied []string, bomPath, deniedListPath string) {
	if len(denied) == 0 {
		return
	}
	common.Log("%s%s%s", Red, alertArt, Reset)
	common.Log("The following open source libraries found in this build are not allowed for")
	common.Log("use. They must be removed from product code in order for the build to comply")
	common.Log("with legal and license requirements:")
	common.Log("")
	common.Log("  %s%s%s", Bold, strings.Join(denied, "\n  "), Reset)
	common.Log("")
	common.Log("Catalog of packages used by your build:")
	common.Log("  %s", bomPath)
	if len(deniedListPath) > 0 {
		common.Log("Catalog of denied packages:")
		common.Log("  %s", deniedListPath)
	}
}
