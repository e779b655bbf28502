package schema

// defaultObjectClasses contains the object classes most directory entries use.
var defaultObjectClasses = []ObjectClass{
	{OID: "2.5.6.0", Name: "top", Kind: ObjectClassAbstract, Must: []string{"objectClass"}},
	{OID: "2.5.6.4", Name: "organization", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"o"}, May: []string{"description", "telephoneNumber", "street", "l", "st", "postalCode"}},
	{OID: "2.5.6.5", Name: "organizationalUnit", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"ou"}, May: []string{"description", "telephoneNumber", "seeAlso", "l", "st"}},
	{OID: "2.5.6.6", Name: "person", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"sn", "cn"}, May: []string{"userPassword", "telephoneNumber", "seeAlso", "description"}},
	{OID: "2.5.6.7", Name: "organizationalPerson", Superior: "person", Kind: ObjectClassStructural,
		May: []string{"title", "telephoneNumber", "street", "postalCode", "ou", "st", "l"}},
	{OID: "2.5.6.9", Name: "groupOfNames", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"member", "cn"}, May: []string{"businessCategory", "seeAlso", "owner", "ou", "o", "description"}},
	{OID: "2.5.6.17", Name: "groupOfUniqueNames", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"uniqueMember", "cn"}, May: []string{"businessCategory", "seeAlso", "owner", "ou", "o", "description"}},
	{OID: "2.16.840.1.113730.3.2.2", Name: "inetOrgPerson", Superior: "organizationalPerson", Kind: ObjectClassStructural,
		May: []string{"displayName", "employeeNumber", "givenName", "mail", "manager", "mobile", "o", "uid", "preferredLanguage"}},
	{OID: "0.9.2342.19200300.100.4.5", Name: "account", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"uid"}, May: []string{"description", "seeAlso", "l", "o", "ou", "host"}},
	{OID: "0.9.2342.19200300.100.4.13", Name: "domain", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"dc"}, May: []string{"description", "o", "l", "st"}},
	{OID: "1.3.6.1.4.1.1466.344", Name: "dcObject", Superior: "top", Kind: ObjectClassAuxiliary,
		Must: []string{"dc"}},
	{OID: "1.3.6.1.1.1.2.0", Name: "posixAccount", Superior: "top", Kind: ObjectClassAuxiliary,
		Must: []string{"cn", "uid", "uidNumber", "gidNumber", "homeDirectory"}, May: []string{"userPassword", "loginShell", "gecos", "description"}},
	{OID: "1.3.6.1.1.1.2.2", Name: "posixGroup", Superior: "top", Kind: ObjectClassStructural,
		Must: []string{"cn", "gidNumber"}, May: []string{"userPassword", "memberUid", "description"}},
}
