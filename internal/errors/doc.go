// Package errors provides the coded errors used across the console.
//
// Every layer returns *Error values so callers can branch on the code
// instead of matching strings:
//
//	item, ok := catalog.Item(id)
//	if !ok {
//	    return errors.NotFoundf("item %s not found", id)
//	}
//
// Wrapping keeps the original code:
//
//	if err := eng.Equip(ctx, input); err != nil {
//	    return errors.Wrapf(err, "failed to equip %s", input.Slot)
//	}
//
// Config structs validate through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Engine.Address", cfg.Engine.Address, vb)
//	return vb.Build()
//
// The engine client converts transport failures with FromGRPCError and the
// console server converts back with ToGRPCError.
package errors
