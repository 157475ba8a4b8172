// Package bumpytrack bumps a major.minor.patch version across the files of a project.
//
// It provides functionalities for:
//   - Loading a .bumpytrack.yml (or .bumpytrack.toml) config that declares the current
//     version and the files whose version string must be rewritten.
//   - Parsing and incrementing versions by part (major, minor or tiny).
//   - Rewriting every declared file by literal, templated search and replace. All
//     replacements are validated before any file is written.
//   - Integrating with Git to commit the rewritten files with the message
//     "Bumping version: <old> → <new>" and to tag the commit with the new version
//     prefixed with "v".
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//	    "os"
//
//	    bumpytrack "github.com/bumpytrack/bumpytrack/pkg"
//	)
//
//	func main() {
//	    reporter := bumpytrack.NewReporter(os.Stdout, false)
//	    res, err := bumpytrack.Run(context.Background(), bumpytrack.Options{Part: "minor"}, reporter)
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s to %s", res.OldVersion, res.NewVersion)
//	}
package bumpytrack
