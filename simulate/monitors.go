package simulate

import "github.com/JeffJassky/pyhsim/monitor"

// runMonitors scans the completed response's series against the built-in
// monitor definitions. A caller wanting a custom monitor set scans
// resp.Series directly with monitor.Scan; Run's bundled scan exists so the
// CLI surface has useful output without further wiring.
func runMonitors(req Request, resp Response) []monitor.Result {
	return monitor.Scan(resp.Series, req.Grid.StartMinute, req.Grid.StepMinutes, monitor.DefaultDefinitions())
}
