package metrics

const Namespace = "storefront"
