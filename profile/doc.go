// Package profile writes runtime profiles of a jsonops command to files.
//
// Profiles are requested per run through flags such as --cpu-profile and
// --heap-profile. A [Session] covers the lifetime of one command:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	session, err := cfg.Start()
//	if err != nil {
//	    return err
//	}
//	defer session.Stop()
//
// The CPU profile spans the session; every other profile is a snapshot
// taken by [Session.Stop]. Block and mutex sampling are only switched on
// when their profile is requested, and are reset when the session stops.
package profile
