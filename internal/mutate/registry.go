package mutate

import (
	"fmt"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// Load builds the Mutation for a rule's mutation_name, validating its
// kwargs immediately so a malformed rule fails at rule-load time
// (anonerr.KindRuleParse) rather than mid-stream on whichever row
// first exercises it.
func Load(name string, kwargs map[string]any) (Mutation, error) {
	switch name {
	case "first_name":
		return firstNameMutation{}, nil
	case "last_name":
		return lastNameMutation{}, nil
	case "full_name":
		return fullNameMutation{}, nil
	case "middle_name":
		return middleNameMutation{}, nil

	case "email":
		return emailMutation{}, nil
	case "phone_number":
		return newPhoneNumberMutation(kwargs)
	case "deterministic_phone_number":
		return newDeterministicPhoneNumberMutation(kwargs)
	case "address":
		return addressMutation{}, nil

	case "numeric_smallint":
		return newIntegerMutation(kwargs, smallintMin, smallintMax)
	case "numeric_integer":
		return newIntegerMutation(kwargs, integerMin, integerMax)
	case "numeric_bigint":
		return newIntegerMutation(kwargs, bigintMin, bigintMax)
	case "numeric_smallserial":
		return newIntegerMutation(kwargs, smallserialMin, smallserialMax)
	case "numeric_serial":
		return newIntegerMutation(kwargs, serialMin, serialMax)
	case "numeric_bigserial":
		return newIntegerMutation(kwargs, bigserialMin, bigserialMax)
	case "numeric_decimal":
		return newDecimalMutation(kwargs)
	case "numeric_real":
		return newRealMutation(kwargs)
	case "numeric_double_precision":
		return newDoublePrecisionMutation(kwargs)

	case "date":
		return newDateMutation(kwargs)

	case "uri":
		return uriMutation{}, nil
	case "ipv4":
		return ipv4Mutation{}, nil
	case "ipv6":
		return ipv6Mutation{}, nil

	case "uuid4":
		return uuid4Mutation{}, nil
	case "uuid5_by_source_value":
		return newUUID5BySourceValueMutation(kwargs)

	case "null":
		return nullMutation{}, nil
	case "empty_string":
		return emptyStringMutation{}, nil
	case "fixed_value":
		return newFixedValueMutation(kwargs)
	case "random_choice":
		return newRandomChoiceMutation(kwargs)

	case "string_by_mask":
		return newStringByMaskMutation(kwargs)

	default:
		return nil, anonerr.New(anonerr.KindRuleParse, name, fmt.Errorf("unknown mutation_name %q", name))
	}
}
