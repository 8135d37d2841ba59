// Package generator renders axios request functions from built folders.
//
// Every tag of a [model.Folder] becomes one file (index for untagged
// operations) holding one exported function per operation. Functions are
// named from the method and path, so GET /pet/{petId} becomes getPetPetId and
// reads petId from its params argument.
//
// # Quick Start
//
//	res, err := batch.Run(ctx, docs, batch.WithCLIType(model.CLITypeVite))
//	if err != nil {
//		return err
//	}
//	cfg := generator.DefaultConfig()
//	cfg.ImportAxiosPath = "@/utils/request"
//	out, err := generator.Generate(res.Folders, cfg)
//	if err != nil {
//		return err
//	}
//	return out.WriteFiles(cfg.OutputFolder)
//
// # Hosts
//
// A host containing 127.0.0.1 is written literally. Any other host is read
// from the environment at build time (import.meta.env for Vite, process.env
// for VueCli) with the document's host as the fallback.
package generator
