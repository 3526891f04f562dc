// pkg/descriptor/types.go
package descriptor

// Extension declares one native extension to build against ECLiPSe
type Extension struct {
	Name        string   `yaml:"name" json:"name"`                 // Dotted module name (e.g., "pyclp.pyclp")
	Sources     []string `yaml:"sources" json:"sources"`           // Source files relative to the project root
	IncludeDirs []string `yaml:"include_dirs" json:"include_dirs"` // Project-local include directories
	Libraries   []string `yaml:"libraries" json:"libraries"`       // Libraries to link
}

// Package holds the distribution metadata the extensions ship in
type Package struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description" json:"description"`
	License     string   `yaml:"license" json:"license"`
	PackageRoot string   `yaml:"package_root" json:"package_root"` // Directory holding the packages (e.g., "src")
	Packages    []string `yaml:"packages" json:"packages"`
}

// Setup is the complete resolution result handed to the toolchain
type Setup struct {
	Package    Package       `yaml:"package" json:"package"`
	Root       string        `yaml:"eclipse_dir" json:"eclipse_dir"`
	System     string        `yaml:"system" json:"system"`
	ArchTag    string        `yaml:"arch" json:"arch"`
	Extensions []*Descriptor `yaml:"extensions" json:"extensions"`
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}

// DefaultExtension returns the pyclp extension
func DefaultExtension() Extension {
	return Extension{
		Name:        "pyclp.pyclp",
		Sources:     []string{"src/pyclp/pyclp.pyx"},
		IncludeDirs: []string{"src/pyclp/"},
		Libraries:   []string{"eclipse"},
	}
}

// DefaultPackage returns the PyCLP distribution metadata
func DefaultPackage() Package {
	return Package{
		Name:        "PyCLP",
		Version:     "0.2",
		Description: "Interface to ECLiPSe CLP",
		License:     "Simplified BSD",
		PackageRoot: "src",
		Packages:    []string{"pyclp"},
	}
}
