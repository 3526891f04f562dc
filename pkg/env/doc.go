// pkg/env/doc.go
package env

/*
Package env describes the on-disk layout of an ECLiPSe installation.

It handles:
  - Deriving per-architecture include, library and binary directories
  - Checking that the derived directories exist
  - Finding the native ECLiPSe library within an installation

Basic Usage:

    import "github.com/arc-language/eclbuild/pkg/env"

    environment := env.New("/opt/eclipse", "i386_linux")

    includes := environment.GetIncludePaths() // /opt/eclipse/include/i386_linux
    libs := environment.GetLibraryPaths()     // /opt/eclipse/lib/i386_linux

    lib, err := environment.FindLibrary(ctx, "eclipse")
    if err == nil && lib != nil {
        fmt.Printf("Found: %s at %s\n", lib.Name, lib.Path)
    }

Layouts:

ECLiPSe keeps prebuilt headers and libraries in subdirectories named after
the architecture tag, so one installation can carry several platforms side
by side. Windows libraries have no "lib" prefix.
*/
