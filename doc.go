// Package eclbuild resolves the build configuration for native extensions
// linked against the ECLiPSe constraint logic programming library.
//
// A Resolver detects the platform, maps it to the ECLiPSe architecture tag
// (Linux -> i386_linux, Windows -> i386_nt), acquires the installation root
// from configuration, the ECLIPSEDIR variable or an operator prompt, and
// emits one immutable Descriptor per configured extension:
//
//	r := eclbuild.NewResolver(eclbuild.DefaultConfig(),
//	    eclbuild.WithPrompt(os.Stdin, os.Stderr),
//	)
//	setup, err := r.Resolve(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, d := range setup.Extensions {
//	    fmt.Println(d.Name(), d.IncludeDirs(), d.LibraryDirs(), d.Libraries())
//	}
//
// Derived include and library directories are not checked for existence;
// the env package offers that check separately.
package eclbuild
