package report

import "github.com/vikwab/failsift/pkg/console"

// CollectFailed runs AnalyzeFile over every path and concatenates the
// results. A failure in one file is reported to the console and
// contributes zero findings; it never aborts the batch.
func CollectFailed(paths []string, regionFilter string) []Finding {
	var all []Finding
	for _, path := range paths {
		findings, err := AnalyzeFile(path, regionFilter)
		if err != nil {
			console.Errorf("Error processing file %s: %v", path, err)
			continue
		}
		all = append(all, findings...)
	}
	return all
}
